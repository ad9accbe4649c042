package record

// Facsimile references one scanned page image backing an entry.
type Facsimile struct {
	Src     string `json:"src"`
	Caption string `json:"caption,omitempty"`
}

// Entry is a single curated fact: a quote or titled excerpt with optional
// provenance. Duplicate entries across categories or dates are allowed;
// de-duplication is editorial judgment, not a system rule.
type Entry struct {
	Title      string      `json:"title,omitempty"`
	Quote      string      `json:"quote,omitempty"`
	Citation   string      `json:"citation,omitempty"`
	SourceURL  string      `json:"source_url,omitempty"`
	Context    string      `json:"context,omitempty"`
	Facsimiles []Facsimile `json:"facsimiles,omitempty"`
}

// Candidate is an intake-pool entry: the curatable fields plus the
// retrieval metadata the sourcing pipeline attaches. Promotion strips
// the metadata and keeps only the embedded Entry.
type Candidate struct {
	Entry

	ActorRole  string `json:"actor_role,omitempty"`
	SourceType string `json:"source_type,omitempty"`
	Author     string `json:"author,omitempty"`
	SourcePath string `json:"source_path,omitempty"`
	DateHint   string `json:"date_hint,omitempty"`
}

// Day is the curated record for one address.
type Day struct {
	Date     string  `json:"date"`
	Soldiers []Entry `json:"soldiers_day"`
	Command  []Entry `json:"men_of_command"`
	Congress []Entry `json:"continental_congress_committees"`
	Voices   []Entry `json:"voices_beyond_the_line"`
}

// Intake is the unbounded candidate pool for one address.
type Intake struct {
	Date     string      `json:"date"`
	Soldiers []Candidate `json:"soldiers_day"`
	Command  []Candidate `json:"men_of_command"`
	Congress []Candidate `json:"continental_congress_committees"`
	Voices   []Candidate `json:"voices_beyond_the_line"`
}

// NewDay returns an empty, well-shaped record for an address. All four
// category slices are non-nil so the stored JSON always carries the four
// array fields.
func NewDay(addr string) *Day {
	return &Day{
		Date:     addr,
		Soldiers: []Entry{},
		Command:  []Entry{},
		Congress: []Entry{},
		Voices:   []Entry{},
	}
}

// NewIntake returns an empty candidate pool for an address.
func NewIntake(addr string) *Intake {
	return &Intake{
		Date:     addr,
		Soldiers: []Candidate{},
		Command:  []Candidate{},
		Congress: []Candidate{},
		Voices:   []Candidate{},
	}
}

// Normalize ensures all category slices are non-nil so that encoding
// always emits the four array fields rather than nulls.
func (d *Day) Normalize() {
	if d.Soldiers == nil {
		d.Soldiers = []Entry{}
	}
	if d.Command == nil {
		d.Command = []Entry{}
	}
	if d.Congress == nil {
		d.Congress = []Entry{}
	}
	if d.Voices == nil {
		d.Voices = []Entry{}
	}
}

// Normalize ensures all candidate slices are non-nil.
func (n *Intake) Normalize() {
	if n.Soldiers == nil {
		n.Soldiers = []Candidate{}
	}
	if n.Command == nil {
		n.Command = []Candidate{}
	}
	if n.Congress == nil {
		n.Congress = []Candidate{}
	}
	if n.Voices == nil {
		n.Voices = []Candidate{}
	}
}
