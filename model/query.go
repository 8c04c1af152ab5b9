package model

type ProjectQuery struct {
	Limit int `form:"limit"`
}

// MaxProjects returns the requested limit, capped by the configured maximum
func (params ProjectQuery) MaxProjects(configured int) int {
	if params.Limit <= 0 || params.Limit > configured {
		return configured
	}

	return params.Limit
}
