package therapists

import "github.com/adeebakausar/latest-intune-mindset-refresh/internal/models"

// Info is the public profile shown on the booking page and used in
// notification emails.
type Info struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Price string `json:"price"`
}

var registry = map[string]Info{
	models.TherapistSandra: {
		ID:    models.TherapistSandra,
		Name:  "Sandra Russet-Silk",
		Title: "Psychoanalytic Psychotherapist",
		Price: models.SessionPriceDisplay,
	},
	models.TherapistBrett: {
		ID:    models.TherapistBrett,
		Name:  "Brett Boyland",
		Title: "Master of Counselling",
		Price: models.SessionPriceDisplay,
	},
}

func Lookup(id string) (Info, bool) {
	info, ok := registry[id]
	return info, ok
}

func IsValid(id string) bool {
	_, ok := registry[id]
	return ok
}

// All returns the registry in a stable order for list endpoints.
func All() []Info {
	return []Info{registry[models.TherapistSandra], registry[models.TherapistBrett]}
}
