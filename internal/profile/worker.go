package profile

// WorkerProfile is a worker as supplied by the profile service.
type WorkerProfile struct {
	ID       string   `json:"id"`
	Location Location `json:"location"`
	// RadiusKm is how far the worker is willing to travel.
	RadiusKm       float64 `json:"radius_km"`
	Categories     Tags    `json:"categories"`
	Qualifications Tags    `json:"qualifications"`
	Activities     Tags    `json:"activities"`
	SelectedTags   Tags    `json:"selected_tags"`
}

// AllTags returns every tag the worker declares, regardless of kind.
func (w *WorkerProfile) AllTags() Tags {
	return Union(w.Categories, w.Qualifications, w.Activities, w.SelectedTags)
}

type Workers struct {
	Items []*WorkerProfile
}

func (w *Workers) Len() int {
	return len(w.Items)
}

func (w *Workers) FindByID(id string) *WorkerProfile {
	for _, worker := range w.Items {
		if worker.ID == id {
			return worker
		}
	}
	return nil
}

func (w *Workers) IDs() []string {
	ids := make([]string, 0, len(w.Items))
	for _, worker := range w.Items {
		ids = append(ids, worker.ID)
	}
	return ids
}
