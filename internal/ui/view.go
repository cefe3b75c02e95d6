package ui

// View assembles the transcript viewport, status bar and input line
func (m Model) View() string {
	if !m.ready {
		return styles.Dim.Render("loading...")
	}

	b := getBuilder()
	defer putBuilder(b)

	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	return b.String()
}

// statusLine shows backend health, in-flight progress, and key hints
func (m Model) statusLine() string {
	backend := styles.Status.Render("backend: online")
	if !m.backendUp {
		backend = styles.Error.Render("backend: offline")
	}

	var activity string
	switch {
	case m.waiting:
		activity = "  " + m.spin.View() + styles.Status.Render("thinking...")
	case m.session != nil:
		activity = styles.Status.Render("  revealing (esc to stop)")
	}

	return backend + activity + styles.Dim.Render("  •  ctrl+c to quit")
}
