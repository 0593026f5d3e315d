package policies

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed policies.json
var policiesData []byte

// Entry is one row of the static route policy table. Role is empty when the
// route has no role restriction. AuthRoute marks login/register style routes
// that signed-in users are bounced away from.
type Entry struct {
	Path         string `json:"path"`
	Method       string `json:"method"`
	Public       bool   `json:"public"`
	RequiresAuth bool   `json:"requires_auth"`
	Role         string `json:"role"`
	AuthRoute    bool   `json:"auth_route"`
}

type PolicyData struct {
	Endpoints []Entry `json:"endpoints"`
}

func (p *PolicyData) Find(path, method string) Entry {
	idx := slices.IndexFunc(p.Endpoints, func(e Entry) bool {
		return e.Path == path && e.Method == method
	})

	if idx == -1 {
		return Entry{}
	}

	return p.Endpoints[idx]
}

func Get() *PolicyData {
	var policies PolicyData

	err := json.Unmarshal(policiesData, &policies)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded route policies")

		return nil
	}

	log.Info().Int("endpoints", len(policies.Endpoints)).Msg("Successfully loaded embedded route policies")

	return &policies
}
