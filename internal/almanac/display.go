package almanac

// displayLayout spells out weekday, month name, day, and label-year.
const displayLayout = "Monday, January 2, 2006"

// DisplayForm formats an address for human display, e.g.
// "Thursday, July 4, 1776". Pure projection; stored data is unaffected.
func DisplayForm(addr string) (string, error) {
	t, err := ParseAddress(addr)
	if err != nil {
		return "", err
	}
	return t.Format(displayLayout), nil
}
