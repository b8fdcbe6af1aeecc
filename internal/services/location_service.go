package services

import (
	"context"
	"strings"

	"peakparty/internal/models/response_models"
	"peakparty/internal/repositories"
	"peakparty/pkg/utils"
)

// Fixed difficulty legend. Unrecognized categories fall back to the marker
// default so a bad row never hides a location.
var categoryColors = map[string]string{
	"simple":   "#008000",
	"moderate": "#FFFF00",
	"complex":  "#FF0000",
}

const defaultMarkerColor = "#808080"

func CategoryColor(category string) string {
	if color, ok := categoryColors[strings.ToLower(category)]; ok {
		return color
	}
	return defaultMarkerColor
}

type LocationServiceInterface interface {
	GetAllLocations(ctx context.Context) ([]response_models.LocationResponse, error)
}

type LocationService struct {
	locationRepo repositories.LocationRepository
}

func NewLocationService(locationRepo repositories.LocationRepository) LocationServiceInterface {
	return &LocationService{
		locationRepo: locationRepo,
	}
}

func (s *LocationService) GetAllLocations(ctx context.Context) ([]response_models.LocationResponse, error) {
	locations, err := s.locationRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.LocationResponse, 0, len(locations))
	for _, location := range locations {
		out = append(out, response_models.LocationResponse{
			ID:          location.ID,
			Name:        location.Name,
			Longitude:   location.Longitude,
			Latitude:    location.Latitude,
			Category:    location.Category,
			Color:       CategoryColor(location.Category),
			Description: location.Description,
			ImageURL:    location.ImageURL,
			GpxURL:      location.GpxURL,
		})
	}

	return out, nil
}
