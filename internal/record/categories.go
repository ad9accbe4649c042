package record

// Category names a record bucket. The values are the JSON keys of the
// current record shape.
type Category string

const (
	CatSoldiers Category = "soldiers_day"
	CatCommand  Category = "men_of_command"
	CatCongress Category = "continental_congress_committees"
	CatVoices   Category = "voices_beyond_the_line"
)

// Primary is the category whose emptiness is a hard invariant violation.
const Primary = CatSoldiers

// Order lists the categories in their fixed editorial order.
var Order = []Category{CatSoldiers, CatCommand, CatCongress, CatVoices}

// Caps is the per-category size limit for curated records. Intake pools
// are uncapped.
var Caps = map[Category]int{
	CatSoldiers: 3,
	CatCommand:  2,
	CatCongress: 2,
	CatVoices:   2,
}

// Cap returns the curated-record size limit for a category.
func Cap(c Category) int {
	return Caps[c]
}

// Category returns a mutable reference to the named bucket, or nil for an
// unknown name.
func (d *Day) Category(c Category) *[]Entry {
	switch c {
	case CatSoldiers:
		return &d.Soldiers
	case CatCommand:
		return &d.Command
	case CatCongress:
		return &d.Congress
	case CatVoices:
		return &d.Voices
	}
	return nil
}

// Category returns the named candidate list, or nil for an unknown name.
func (n *Intake) Category(c Category) []Candidate {
	switch c {
	case CatSoldiers:
		return n.Soldiers
	case CatCommand:
		return n.Command
	case CatCongress:
		return n.Congress
	case CatVoices:
		return n.Voices
	}
	return nil
}
