package store

import (
	"context"

	"github.com/easycase/easycase/internal/database"
	"gorm.io/gorm"
)

// CaseWithClient is the read model for case listings: the stored Case plus
// the referenced client's display name resolved at query time. ClientName is
// null when the reference is dangling; the raw ClientID is always preserved.
type CaseWithClient struct {
	database.Case
	ClientName *string `json:"clientName"`
}

// CaseViews joins cases with their clients' names on read, so the name is
// never stored redundantly on the case row.
type CaseViews struct {
	cases   *Scoped[database.Case]
	clients *Scoped[database.Client]
}

func NewCaseViews(db *gorm.DB) *CaseViews {
	return &CaseViews{
		cases:   NewScoped[database.Case](db),
		clients: NewScoped[database.Client](db),
	}
}

// FindWithClientName lists the owner's cases matching the scopes and attaches
// each referenced client's name.
func (v *CaseViews) FindWithClientName(ctx context.Context, owner string, scopes ...Scope) ([]CaseWithClient, error) {
	cases, err := v.cases.FindOwned(ctx, owner, scopes...)
	if err != nil {
		return nil, err
	}

	names, err := v.clientNames(ctx, owner, cases)
	if err != nil {
		return nil, err
	}

	views := make([]CaseWithClient, 0, len(cases))
	for _, c := range cases {
		views = append(views, withName(c, names))
	}
	return views, nil
}

// GetWithClientName fetches one owned case with its client name attached.
func (v *CaseViews) GetWithClientName(ctx context.Context, owner, id string) (*CaseWithClient, error) {
	c, err := v.cases.GetOwned(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	names, err := v.clientNames(ctx, owner, []database.Case{*c})
	if err != nil {
		return nil, err
	}

	view := withName(*c, names)
	return &view, nil
}

func (v *CaseViews) clientNames(ctx context.Context, owner string, cases []database.Case) (map[string]string, error) {
	ids := make([]string, 0, len(cases))
	seen := make(map[string]bool, len(cases))
	for _, c := range cases {
		if c.ClientID != "" && !seen[c.ClientID] {
			seen[c.ClientID] = true
			ids = append(ids, c.ClientID)
		}
	}

	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	clients, err := v.clients.FindOwned(ctx, owner, In("id", ids))
	if err != nil {
		return nil, err
	}
	for _, cl := range clients {
		names[cl.ID] = cl.Name
	}
	return names, nil
}

func withName(c database.Case, names map[string]string) CaseWithClient {
	view := CaseWithClient{Case: c}
	if name, ok := names[c.ClientID]; ok {
		view.ClientName = &name
	}
	return view
}
