package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/tkrajina/gpxgo/gpx"

	"peakparty/internal/models/response_models"
	"peakparty/internal/repositories"
	"peakparty/pkg/utils"
)

// FitPadding is the fixed viewport padding applied when the map is fit to a
// route's bounds.
const FitPadding = 120

// maxGPXBytes caps how much of a route file is read. A file truncated at the
// cap fails to parse and the overlay degrades to empty like any other bad
// resource.
const maxGPXBytes = 8 << 20

type RouteServiceInterface interface {
	GetOverlay(ctx context.Context, locationID int64) (*response_models.RouteOverlayResponse, error)
}

type RouteService struct {
	locationRepo repositories.LocationRepository
	client       *http.Client
}

func NewRouteService(locationRepo repositories.LocationRepository, client *http.Client) RouteServiceInterface {
	return &RouteService{
		locationRepo: locationRepo,
		client:       client,
	}
}

// GetOverlay fetches and parses the location's GPX resource. A missing
// reference, an unreachable resource, or a parse failure all degrade to an
// empty overlay: logged, never surfaced to the caller.
func (s *RouteService) GetOverlay(ctx context.Context, locationID int64) (*response_models.RouteOverlayResponse, error) {
	location, err := s.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if location == nil {
		return nil, utils.ErrLocationNotFound
	}

	empty := &response_models.RouteOverlayResponse{
		Points:  []response_models.RoutePoint{},
		Padding: FitPadding,
	}

	if location.GpxURL == "" {
		return empty, nil
	}

	points, err := s.fetchRoutePoints(ctx, location.GpxURL)
	if err != nil {
		log.Printf("Error loading GPX for location %d: %v", locationID, err)
		return empty, nil
	}
	if len(points) == 0 {
		return empty, nil
	}

	return &response_models.RouteOverlayResponse{
		Points:  points,
		Bounds:  computeBounds(points),
		Padding: FitPadding,
	}, nil
}

func (s *RouteService) fetchRoutePoints(ctx context.Context, url string) ([]response_models.RoutePoint, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gpx fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxGPXBytes))
	if err != nil {
		return nil, err
	}

	doc, err := gpx.ParseBytes(body)
	if err != nil {
		return nil, err
	}

	var points []response_models.RoutePoint
	for _, track := range doc.Tracks {
		for _, segment := range track.Segments {
			for _, p := range segment.Points {
				points = append(points, response_models.RoutePoint{
					Longitude: p.Longitude,
					Latitude:  p.Latitude,
				})
			}
		}
	}
	for _, route := range doc.Routes {
		for _, p := range route.Points {
			points = append(points, response_models.RoutePoint{
				Longitude: p.Longitude,
				Latitude:  p.Latitude,
			})
		}
	}

	return points, nil
}

// computeBounds returns the minimal region covering every point.
func computeBounds(points []response_models.RoutePoint) *response_models.RouteBounds {
	if len(points) == 0 {
		return nil
	}

	bounds := &response_models.RouteBounds{
		MinLongitude: points[0].Longitude,
		MaxLongitude: points[0].Longitude,
		MinLatitude:  points[0].Latitude,
		MaxLatitude:  points[0].Latitude,
	}
	for _, p := range points[1:] {
		if p.Longitude < bounds.MinLongitude {
			bounds.MinLongitude = p.Longitude
		}
		if p.Longitude > bounds.MaxLongitude {
			bounds.MaxLongitude = p.Longitude
		}
		if p.Latitude < bounds.MinLatitude {
			bounds.MinLatitude = p.Latitude
		}
		if p.Latitude > bounds.MaxLatitude {
			bounds.MaxLatitude = p.Latitude
		}
	}
	return bounds
}
