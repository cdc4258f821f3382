package flashpoint

// View models for the two side panels. Missing fields get explicit display
// fallbacks instead of leaking empty strings to the UI.

type FlashpointPanel struct {
	Srno        string `json:"srno"`
	Title       string `json:"title"`
	Zone        string `json:"zone"`
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}

type ZonePanel struct {
	Zone        string `json:"zone"`
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}

type ViewState struct {
	Messages    []Turn            `json:"messages"`
	Flashpoints []FlashpointPanel `json:"flashpoints"`
	Zones       []ZonePanel       `json:"zones"`
}

func newFlashpointPanel(e ShortlistEntry) FlashpointPanel {
	p := FlashpointPanel{
		Srno:        e.Srno,
		Title:       e.Title,
		Zone:        e.Zone,
		Score:       e.Score,
		Explanation: e.Explanation,
	}
	if p.Srno == "" {
		p.Srno = "Unknown"
	}
	if p.Title == "" {
		p.Title = "Unknown"
	}
	if p.Zone == "" {
		p.Zone = "N/A"
	}
	return p
}

func newZonePanel(e ZoneEntry) ZonePanel {
	p := ZonePanel{
		Zone:        e.Zone,
		Score:       e.Score,
		Explanation: e.Explanation,
	}
	if p.Zone == "" {
		p.Zone = "Unknown"
	}
	return p
}

// viewLocked snapshots session state for the UI. Callers hold s.mu.
func (s *service) viewLocked() ViewState {
	v := ViewState{
		Messages:    make([]Turn, len(s.messages)),
		Flashpoints: make([]FlashpointPanel, 0, len(s.shortlist)),
		Zones:       make([]ZonePanel, 0, len(s.zones)),
	}
	copy(v.Messages, s.messages)
	for _, e := range s.shortlist {
		v.Flashpoints = append(v.Flashpoints, newFlashpointPanel(e))
	}
	for _, e := range s.zones {
		v.Zones = append(v.Zones, newZonePanel(e))
	}
	return v
}
