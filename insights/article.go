package insights

// Source tags where an article came from.
type Source string

const (
	SourceStatic Source = "static"
	SourceRemote Source = "remote"
)

// Article is the one shape the catalog, search and pagination operate on.
// Editorial pieces are compiled in; location guides are converted from the
// remote collection at load time.
type Article struct {
	ID       string   `json:"id"`
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Date     string   `json:"date"`
	ReadTime string   `json:"read_time"`
	Category string   `json:"category"`
	Image    string   `json:"image"`
	Tags     []string `json:"tags"`
	Source   Source   `json:"source"`
}

// CategoryAll matches every article regardless of its actual category.
const CategoryAll = "All"

// staticArticles is the editorial content, in authored order.
var staticArticles = []Article{
	{
		ID:       "managed-farmland-returns",
		Slug:     "/insights/managed-farmland-returns",
		Title:    "What Returns Can You Expect from Managed Farmland?",
		Excerpt:  "A realistic look at yield, land appreciation and payout timelines for managed farm plots.",
		Date:     "Mar 12, 2025",
		ReadTime: "7 min read",
		Category: "Investment",
		Image:    "/uploads/insights/farmland-returns.webp",
		Tags:     []string{"returns", "farmland", "investment"},
		Source:   SourceStatic,
	},
	{
		ID:       "moringa-cultivation-guide",
		Slug:     "/insights/moringa-cultivation-guide",
		Title:    "Moringa Cultivation: From Sapling to First Harvest",
		Excerpt:  "How our partner farms raise moringa with drip irrigation and zero chemical inputs.",
		Date:     "Feb 28, 2025",
		ReadTime: "5 min read",
		Category: "Farming",
		Image:    "/uploads/insights/moringa-field.webp",
		Tags:     []string{"moringa", "cultivation", "organic"},
		Source:   SourceStatic,
	},
	{
		ID:       "soil-health-basics",
		Slug:     "/insights/soil-health-basics",
		Title:    "Soil Health Basics Every Farm Investor Should Know",
		Excerpt:  "Organic carbon, water retention and why soil reports matter more than brochures.",
		Date:     "Feb 10, 2025",
		ReadTime: "6 min read",
		Category: "Farming",
		Image:    "/uploads/insights/soil-health.webp",
		Tags:     []string{"soil", "due diligence"},
		Source:   SourceStatic,
	},
	{
		ID:       "agroforestry-carbon-credits",
		Slug:     "/insights/agroforestry-carbon-credits",
		Title:    "Agroforestry and the Coming Carbon Credit Market",
		Excerpt:  "Tree-based farm models can earn more than produce. Here is how credits are measured.",
		Date:     "Jan 22, 2025",
		ReadTime: "8 min read",
		Category: "Sustainability",
		Image:    "/uploads/insights/agroforestry.webp",
		Tags:     []string{"carbon credits", "agroforestry", "sustainability"},
		Source:   SourceStatic,
	},
	{
		ID:       "farm-visit-checklist",
		Slug:     "/insights/farm-visit-checklist",
		Title:    "Your First Farm Visit: A Practical Checklist",
		Excerpt:  "Twelve things to verify on the ground before signing a managed farmland agreement.",
		Date:     "Jan 05, 2025",
		ReadTime: "4 min read",
		Category: "Investment",
		Image:    "/uploads/insights/farm-visit.webp",
		Tags:     []string{"checklist", "farm visit", "due diligence"},
		Source:   SourceStatic,
	},
	{
		ID:       "drip-irrigation-water-savings",
		Slug:     "/insights/drip-irrigation-water-savings",
		Title:    "How Drip Irrigation Cuts Water Use by Half",
		Excerpt:  "Field data from two seasons comparing flood and drip irrigation on our partner farms.",
		Date:     "Dec 18, 2024",
		ReadTime: "5 min read",
		Category: "Sustainability",
		Image:    "/uploads/insights/drip-irrigation.webp",
		Tags:     []string{"water", "irrigation", "field data"},
		Source:   SourceStatic,
	},
}

// StaticArticles returns a copy of the compiled-in editorial list.
func StaticArticles() []Article {
	out := make([]Article, len(staticArticles))
	copy(out, staticArticles)
	return out
}
