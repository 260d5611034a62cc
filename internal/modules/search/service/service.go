package service

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"anoa.com/usherhire/internal/entity"
	"anoa.com/usherhire/pkg/sanitize"
	"github.com/google/uuid"
	"github.com/meilisearch/meilisearch-go"
)

const usherIndexUID = "ushers"

type UsherQuery struct {
	Search             string
	AvailabilityStatus entity.AvailabilityStatus
	MinRating          float64
	Limit              int
}

// UsherIndex keeps a full text index of usher profiles for the directory.
type UsherIndex interface {
	IndexUsher(profile *entity.Profile) error
	// SearchUshers returns matching usher ids, best rated first.
	SearchUshers(query UsherQuery) ([]uuid.UUID, error)
}

type meiliUsherIndex struct {
	client meilisearch.ServiceManager
}

func NewMeiliUsherIndex(client meilisearch.ServiceManager) UsherIndex {
	s := &meiliUsherIndex{client: client}
	s.initIndexes()
	return s
}

func (s *meiliUsherIndex) initIndexes() {
	index := s.client.Index(usherIndexUID)

	filterableAttrs := []string{"availability_status", "rating"}
	filterableInterface := make([]any, len(filterableAttrs))
	for i, v := range filterableAttrs {
		filterableInterface[i] = v
	}
	if _, err := index.UpdateFilterableAttributes(&filterableInterface); err != nil {
		log.Printf("Failed to update ushers filterable attributes: %v", err)
	}

	sortableAttrs := []string{"rating", "total_events"}
	if _, err := index.UpdateSortableAttributes(&sortableAttrs); err != nil {
		log.Printf("Failed to update ushers sortable attributes: %v", err)
	}

	searchableAttrs := []string{"full_name", "skills", "bio"}
	if _, err := index.UpdateSearchableAttributes(&searchableAttrs); err != nil {
		log.Printf("Failed to update ushers searchable attributes: %v", err)
	}

	log.Println("Meilisearch usher index initialized")
}

type UsherDoc struct {
	ID                 string   `json:"id"`
	FullName           string   `json:"full_name"`
	Bio                string   `json:"bio"`
	Skills             []string `json:"skills"`
	AvailabilityStatus string   `json:"availability_status"`
	Rating             float64  `json:"rating"`
	TotalEvents        int      `json:"total_events"`
	AvatarURL          string   `json:"avatar_url"`
}

// BuildUsherDoc flattens a profile into the indexed document.
func BuildUsherDoc(profile *entity.Profile) (UsherDoc, error) {
	if profile == nil || profile.UsherProfile == nil {
		return UsherDoc{}, fmt.Errorf("usher profile not loaded")
	}
	up := profile.UsherProfile

	doc := UsherDoc{
		ID:                 profile.ID.String(),
		FullName:           profile.FullName,
		Skills:             append([]string{}, up.Skills...),
		AvailabilityStatus: string(up.AvailabilityStatus),
		Rating:             up.Rating,
		TotalEvents:        up.TotalEvents,
	}
	if up.Bio != nil {
		doc.Bio = sanitize.Text(*up.Bio)
	}
	if profile.AvatarURL != nil {
		doc.AvatarURL = *profile.AvatarURL
	}
	return doc, nil
}

func (s *meiliUsherIndex) IndexUsher(profile *entity.Profile) error {
	doc, err := BuildUsherDoc(profile)
	if err != nil {
		return err
	}

	task, err := s.client.Index(usherIndexUID).AddDocuments([]UsherDoc{doc}, strPtr("id"))
	if err != nil {
		return err
	}
	log.Printf("Indexed usher %s, task id: %d", profile.ID, task.TaskUID)
	return nil
}

func (s *meiliUsherIndex) SearchUshers(query UsherQuery) ([]uuid.UUID, error) {
	req := &meilisearch.SearchRequest{
		Sort:                 []string{"rating:desc", "total_events:desc"},
		AttributesToRetrieve: []string{"id"},
	}
	if filter := BuildFilter(query); filter != "" {
		req.Filter = filter
	}
	if query.Limit > 0 {
		req.Limit = int64(query.Limit)
	}

	raw, err := s.client.Index(usherIndexUID).SearchRaw(strings.TrimSpace(query.Search), req)
	if err != nil {
		return nil, err
	}
	return decodeHitIDs(*raw)
}

// BuildFilter renders the Meilisearch filter expression for query.
func BuildFilter(query UsherQuery) string {
	var clauses []string
	if query.AvailabilityStatus != "" {
		clauses = append(clauses, fmt.Sprintf("availability_status = %q", string(query.AvailabilityStatus)))
	}
	if query.MinRating > 0 {
		clauses = append(clauses, fmt.Sprintf("rating >= %g", query.MinRating))
	}
	return strings.Join(clauses, " AND ")
}

func decodeHitIDs(raw []byte) ([]uuid.UUID, error) {
	var resp struct {
		Hits []struct {
			ID string `json:"id"`
		} `json:"hits"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		id, err := uuid.Parse(hit.ID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func strPtr(s string) *string {
	return &s
}
