package response_models

type PartySummaryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LeaderID    string `json:"leader_id"`
	LeaderName  string `json:"leader_name"`
	MemberCount int    `json:"member_count"`
	MaxMembers  int    `json:"max_members"`
	IsMember    bool   `json:"is_member"`
}

type PartyMemberResponse struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	JoinedAt    string `json:"joined_at"`
}

type PartyDetailResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	LocationID   int64                 `json:"location_id"`
	LeaderID     string                `json:"leader_id"`
	LeaderName   string                `json:"leader_name"`
	TripDate     string                `json:"trip_date"`
	TripDuration int                   `json:"trip_duration"`
	Description  string                `json:"description"`
	Members      []PartyMemberResponse `json:"members"`
	MemberCount  int                   `json:"member_count"`
	IsMember     bool                  `json:"is_member"`
	IsOwner      bool                  `json:"is_owner"`
}

type MessageResponse struct {
	ID         string `json:"id"`
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}
