package pipeline

// OutlineResult is the persisted structure for outline mode.
type OutlineResult struct {
	Title   string             `json:"title"`
	Outline []OutlineEntryJSON `json:"outline"`
}

// OutlineEntryJSON is one serialized heading entry.
type OutlineEntryJSON struct {
	Level string `json:"level"` // "H1" | "H2" | "H3"
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Metadata describes a ranking run.
type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// ExtractedSection is one ranked digest entry, rank 1..TopSections.
type ExtractedSection struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
	PageNumber     int    `json:"page_number"`
}

// SubsectionAnalysis carries the refined excerpt for the section at the
// same position in ExtractedSections.
type SubsectionAnalysis struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// RankResult is the persisted structure for ranking mode.
type RankResult struct {
	RunID              string               `json:"-"`
	Metadata           Metadata             `json:"metadata"`
	ExtractedSections  []ExtractedSection   `json:"extracted_sections"`
	SubsectionAnalysis []SubsectionAnalysis `json:"subsection_analysis"`
}
