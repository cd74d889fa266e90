package panel

// View is everything a renderer needs to draw the panel.
type View struct {
	Title string
	State State

	// Selection form, shown until a token is issued.
	ShowForm    bool
	Placeholder string
	Options     []ViewOption
	CreateLabel string
	EmptyPrompt string

	// Issued token and usage section.
	Token      string
	CopyTip    string
	UsageTitle string
	Guide      string
	HeaderName string
}

type ViewOption struct {
	Name     string
	Label    string
	Hours    int
	Selected bool
}

func (p *Panel) View() View {
	p.mu.Lock()
	state, token := p.state, p.token
	var selected *int
	if p.form.Expiration != nil {
		h := *p.form.Expiration
		selected = &h
	}
	p.mu.Unlock()

	v := View{
		Title:      p.msg("title"),
		State:      state,
		HeaderName: p.pctx.Variant.HeaderName,
	}

	if state == StateIssued {
		v.Token = token
		v.CopyTip = p.msg("copy tip")
		v.UsageTitle = p.msg("usage")
		v.Guide = p.guide
		return v
	}

	v.ShowForm = true
	v.Placeholder = p.msg("expired time")
	v.CreateLabel = p.msg("create button")
	v.EmptyPrompt = p.msg("create tip")
	for _, o := range p.pctx.Variant.Options {
		v.Options = append(v.Options, ViewOption{
			Name:     o.Name,
			Label:    o.Label(p.pctx.Lang),
			Hours:    o.Hours,
			Selected: selected != nil && *selected == o.Hours,
		})
	}
	return v
}
