package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"strings"
	"time"
)

// guideCategory is the category every remote location guide lands in.
const guideCategory = "Location Guides"

// guideImages is the stock image pool for location guides. Assignment is
// a hash of the record ID so a guide keeps the same image across reloads.
var guideImages = []string{
	"/uploads/insights/stock/farmland-aerial.webp",
	"/uploads/insights/stock/orchard-rows.webp",
	"/uploads/insights/stock/green-fields.webp",
	"/uploads/insights/stock/tractor-sunset.webp",
}

// LocationGuide is the wire shape of one record from the content endpoint.
type LocationGuide struct {
	ID              string    `json:"id"`
	State           string    `json:"state"`
	City            string    `json:"city"`
	MetaTitle       string    `json:"meta_title"`
	MetaDescription string    `json:"meta_description"`
	CreatedAt       time.Time `json:"created_at"`
}

type guidesResponse struct {
	Records []LocationGuide `json:"records"`
}

// GuideClient fetches the programmatically generated location guides.
type GuideClient struct {
	URL    string
	Client *http.Client
}

func NewGuideClient(url string) *GuideClient {
	return &GuideClient{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch issues the single read against the content endpoint and converts
// each record to the common article shape. A non-2xx status is an error;
// a missing records field just yields an empty slice.
func (g *GuideClient) Fetch(ctx context.Context) ([]Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach content endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("content endpoint returned %s", resp.Status)
	}

	var body guidesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode content response: %w", err)
	}

	articles := make([]Article, 0, len(body.Records))
	for _, rec := range body.Records {
		articles = append(articles, ConvertGuide(rec))
	}
	return articles, nil
}

// ConvertGuide maps a remote location guide onto the common article shape.
func ConvertGuide(rec LocationGuide) Article {
	return Article{
		ID:       rec.ID,
		Slug:     GuideSlug(rec.State, rec.City),
		Title:    rec.MetaTitle,
		Excerpt:  rec.MetaDescription,
		Date:     rec.CreatedAt.Format("Jan 02, 2006"),
		ReadTime: "6 min read",
		Category: guideCategory,
		Image:    guideImages[guideImageIndex(rec.ID)],
		Tags:     []string{rec.City, rec.State, "farmland investment"},
		Source:   SourceRemote,
	}
}

// GuideSlug builds the location-investment path for a state/city pair,
// e.g. ("Tamil Nadu", "Coimbatore") -> "/invest/tamil-nadu/coimbatore".
func GuideSlug(state, city string) string {
	return "/invest/" + slugify(state) + "/" + slugify(city)
}

func slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

func guideImageIndex(id string) int {
	h := fnv.New32a()
	h.Write([]byte(id))
	return int(h.Sum32() % uint32(len(guideImages)))
}
