package view

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"turfbot/internal/domain/entities"
	"turfbot/pkg/tz"
)

const (
	colorFight      = 0xE74C3C
	colorLineup     = 0x5865F2
	colorAssignment = 0xE67E22

	// Platform limits.
	maxFieldValue   = 1024
	maxSelectOption = 25
	maxOptionLabel  = 100
)

// Renderer builds views from event snapshots. It holds no event state; the
// same snapshot always yields the same view.
type Renderer struct {
	tr      Translate
	logoURL string
}

func NewRenderer(tr Translate, logoURL string) *Renderer {
	return &Renderer{tr: tr, logoURL: logoURL}
}

// Announce renders the public signup message. Buttons are only attached once
// the event has an ID to correlate them with.
func (r *Renderer) Announce(ev *entities.Event) View {
	v := View{
		Kind:     KindAnnounce,
		Title:    r.tr("announce_title_"+string(ev.Type), nil),
		Body:     r.tr("announce_body", map[string]any{"Description": ev.Description}),
		Color:    colorLineup,
		ImageURL: r.logoURL,
		Fields:   []Field{r.participantsField("announce_participants", ev)},
	}
	if ev.Type == entities.EventTypeFight {
		v.Color = colorFight
	}
	if !ev.ExpiresAt.IsZero() {
		v.Footer = r.tr("announce_expires", map[string]any{"At": tz.Format(ev.ExpiresAt)})
	}
	if ev.ID != "" {
		v.Buttons = []Button{
			{CustomID: ButtonID(ActionJoin, ev.ID), Label: r.tr("button_join", nil), Style: ButtonSuccess},
			{CustomID: ButtonID(ActionLeave, ev.ID), Label: r.tr("button_leave", nil), Style: ButtonDanger},
			{CustomID: ButtonID(ActionDelete, ev.ID), Label: r.tr("button_delete", nil), Style: ButtonSecondary},
		}
	}
	return v
}

// Assignment renders the admin board: all participants, the members of each
// category and one select per category.
func (r *Renderer) Assignment(ev *entities.Event) View {
	v := View{
		Kind:     KindAssignment,
		Body:     r.tr("board_body", map[string]any{"Description": ev.Description}),
		Color:    colorAssignment,
		ImageURL: r.logoURL,
		Fields:   []Field{r.participantsField("board_participants", ev)},
	}
	for _, c := range entities.Categories {
		name := r.tr("category_"+string(c), nil)
		value := "—"
		if members := ev.Categories[c]; len(members) > 0 {
			value = mentionList(members)
		}
		v.Fields = append(v.Fields, Field{
			Name:   r.tr("board_category", map[string]any{"Category": name}),
			Value:  value,
			Inline: true,
		})
		v.Selects = append(v.Selects, r.categorySelect(ev, c, name))
	}
	return v
}

func (r *Renderer) participantsField(key string, ev *entities.Event) Field {
	f := Field{Name: r.tr(key, map[string]any{"Count": len(ev.Participants)})}
	if len(ev.Participants) == 0 {
		f.Value = r.tr("no_participants", nil)
		return f
	}
	ids := make([]string, 0, len(ev.Participants))
	for _, p := range ev.Participants {
		ids = append(ids, p.UserID)
	}
	f.Value = mentionList(ids)
	return f
}

func (r *Renderer) categorySelect(ev *entities.Event, c entities.Category, name string) Select {
	s := Select{
		CustomID:    AssignID(c, ev.ID),
		Placeholder: r.tr("board_select_placeholder", map[string]any{"Category": name}),
	}
	for _, p := range ev.Participants {
		if len(s.Options) == maxSelectOption {
			break
		}
		label := p.DisplayName
		if label == "" {
			label = r.tr("unknown_user", map[string]any{"ID": p.UserID})
		}
		cat, _ := ev.CategoryOf(p.UserID)
		s.Options = append(s.Options, Option{Label: truncate(label, maxOptionLabel), Value: p.UserID, Default: cat == c})
	}
	if len(s.Options) == 0 {
		s.Options = []Option{{Label: r.tr("board_none_option", nil), Value: NoneOptionValue, Default: true}}
	}
	s.MaxValues = len(s.Options)
	return s
}

// mentionList renders ids as a bulleted mention list that fits in one field.
func mentionList(ids []string) string {
	var b strings.Builder
	for i, id := range ids {
		line := fmt.Sprintf("• <@%s>", id)
		if i > 0 {
			line = "\n" + line
		}
		reserve := 0
		if left := len(ids) - i - 1; left > 0 {
			reserve = len(fmt.Sprintf("\n… +%d", left))
		}
		if b.Len()+len(line)+reserve > maxFieldValue {
			fmt.Fprintf(&b, "\n… +%d", len(ids)-i)
			break
		}
		b.WriteString(line)
	}
	return b.String()
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
