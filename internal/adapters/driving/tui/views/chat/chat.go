// Package chat provides the main chat view for the TUI.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
	"github.com/custodia-labs/ragchat-cli/internal/core/ports/driving"
)

// turnState tracks where the view is in the request/reply cycle.
type turnState int

const (
	stateIdle turnState = iota
	stateAwaiting
	stateFailed
)

// View is the chat view with transcript, input, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.ChatInput
	statusbar *status.Bar
	spinner   spinner.Model

	conversationService driving.ConversationService
	ctx                 context.Context

	conversation *domain.Conversation
	transcript   []domain.Message
	pendingQuery string
	state        turnState

	// citationFocus moves keyboard focus from the input to the latest
	// reply's citations. citationIdx is the highlighted citation.
	citationFocus bool
	citationIdx   int

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new chat view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	conversationService driving.ConversationService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(s.Theme().Primary)

	return &View{
		styles:              s,
		keymap:              km,
		input:               input.NewChatInput(s),
		statusbar:           status.NewBar(s, km),
		spinner:             sp,
		conversationService: conversationService,
		ctx:                 context.Background(),
		state:               stateIdle,
		citationIdx:         -1,
		width:               80,
		height:              24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.TurnCompleted:
		v.handleTurnCompleted(msg)
		return v, nil

	case spinner.TickMsg:
		if v.state != stateAwaiting {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.citationFocus {
		return v.handleCitationKey(msg)
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.History):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHistory}
		}

	case keymap.Matches(msg.String(), v.keymap.CycleCitation):
		v.cycleCitation()
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Retry):
		if v.state == stateFailed && v.pendingQuery != "" {
			return v, v.startTurn(v.pendingQuery)
		}
		return v, nil

	case msg.Type == tea.KeyEsc:
		if v.state == stateFailed {
			v.clearError()
		}
		return v, nil

	case msg.Type == tea.KeyEnter:
		if v.state == stateAwaiting {
			return v, nil
		}
		query := strings.TrimSpace(v.input.Value())
		if query == "" {
			return v, nil
		}
		v.input.Reset()
		return v, v.startTurn(query)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleCitationKey processes keyboard input while a citation is highlighted.
func (v *View) handleCitationKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.CycleCitation):
		v.cycleCitation()
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.OpenCitation):
		citations := v.latestCitations()
		if v.citationIdx >= 0 && v.citationIdx < len(citations) {
			cit := citations[v.citationIdx]
			return v, func() tea.Msg {
				return messages.CitationOpened{Citation: cit}
			}
		}
		return v, nil

	case msg.Type == tea.KeyEsc:
		v.exitCitationFocus()
		return v, nil
	}

	return v, nil
}

// cycleCitation advances the highlight across the latest reply's
// citations, entering citation focus on the first press.
func (v *View) cycleCitation() {
	citations := v.latestCitations()
	if len(citations) == 0 {
		return
	}

	if !v.citationFocus {
		v.citationFocus = true
		v.citationIdx = 0
		v.input.Blur()
	} else {
		v.citationIdx = (v.citationIdx + 1) % len(citations)
	}

	cit := citations[v.citationIdx]
	v.statusbar.SetState(status.StateCitation)
	v.statusbar.SetMessage(fmt.Sprintf("%s, p.%d", cit.DocumentTitle, cit.PageNumber))
}

// exitCitationFocus returns keyboard focus to the input.
func (v *View) exitCitationFocus() {
	v.citationFocus = false
	v.citationIdx = -1
	v.input.Focus()
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// latestCitations returns the citations of the most recent assistant message.
func (v *View) latestCitations() []domain.Citation {
	for i := len(v.transcript) - 1; i >= 0; i-- {
		if v.transcript[i].Role == domain.RoleAssistant {
			return v.transcript[i].Citations
		}
	}
	return nil
}

// startTurn echoes the user message locally and kicks off a chat turn.
func (v *View) startTurn(query string) tea.Cmd {
	v.state = stateAwaiting
	v.err = nil
	v.pendingQuery = query
	v.statusbar.SetState(status.StateThinking)
	v.statusbar.SetMessage("")

	// Only echo queries not already in the transcript. A retry resends
	// a message the failed turn already persisted and displayed.
	if len(v.transcript) == 0 || v.transcript[len(v.transcript)-1].Content != query {
		v.transcript = append(v.transcript, domain.Message{
			Role:      domain.RoleUser,
			Content:   query,
			Timestamp: time.Now(),
		})
	}

	return tea.Batch(v.performTurn(query), v.spinner.Tick)
}

// performTurn runs one chat turn and reports the outcome.
func (v *View) performTurn(query string) tea.Cmd {
	conv := v.conversation
	ctx := v.ctx
	svc := v.conversationService

	return func() tea.Msg {
		if svc == nil {
			return messages.TurnCompleted{Err: ErrNoConversationService}
		}

		if conv == nil {
			created, err := svc.Create(ctx)
			if err != nil {
				return messages.TurnCompleted{Err: err}
			}
			conv = created
		}

		reply, err := svc.Send(ctx, conv.ID, query)

		// Refresh the conversation so the transcript reflects exactly
		// what was persisted, including a kept user message on failure.
		if updated, getErr := svc.Get(ctx, conv.ID); getErr == nil {
			conv = updated
		}

		return messages.TurnCompleted{Conversation: conv, Reply: reply, Err: err}
	}
}

// handleTurnCompleted processes the outcome of a chat turn.
func (v *View) handleTurnCompleted(msg messages.TurnCompleted) {
	if msg.Conversation != nil {
		v.conversation = msg.Conversation
		v.transcript = msg.Conversation.Messages
		v.statusbar.SetTitle(msg.Conversation.Title)
	}

	if msg.Err != nil {
		v.state = stateFailed
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.state = stateIdle
	v.err = nil
	v.pendingQuery = ""
	v.citationFocus = false
	v.citationIdx = -1
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// clearError dismisses a failed turn without retrying.
func (v *View) clearError() {
	v.state = stateIdle
	v.err = nil
	v.pendingQuery = ""
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// View renders the chat view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := v.styles.Title.Render("ragchat")
	if v.conversation != nil && v.conversation.Title != domain.DefaultConversationTitle {
		header += v.styles.Muted.Render("  " + v.conversation.Title)
	}
	sections = append(sections, header, "")

	sections = append(sections, v.renderTranscript())

	if v.state == stateAwaiting {
		sections = append(sections, "", v.spinner.View()+v.styles.Muted.Render(" Thinking..."))
	}

	if v.err != nil {
		errLine := v.styles.Error.Render(v.err.Error()) +
			v.styles.Muted.Render("  (ctrl+r retry, esc dismiss)")
		sections = append(sections, "", errLine)
	}

	sections = append(sections, "", v.input.View())
	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTranscript renders the message history, trimmed to fit the
// available height.
func (v *View) renderTranscript() string {
	if len(v.transcript) == 0 {
		return v.styles.Muted.Render("Ask a question about the knowledge base to get started.")
	}

	lines := make([]string, 0, len(v.transcript)*3)
	for i := range v.transcript {
		lines = append(lines, v.renderMessage(&v.transcript[i])...)
		lines = append(lines, "")
	}

	// Keep the tail of the transcript visible
	visible := v.transcriptLines()
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}

	return strings.Join(lines, "\n")
}

// renderMessage renders one message as a label line plus wrapped content.
func (v *View) renderMessage(msg *domain.Message) []string {
	var label string
	if msg.Role == domain.RoleUser {
		label = v.styles.UserLabel.Render("You")
	} else {
		label = v.styles.AssistantLabel.Render("Assistant")
	}

	lines := []string{label}
	for _, line := range wrap(msg.Content, v.contentWidth()) {
		lines = append(lines, v.styles.Normal.Render("  "+line))
	}

	if msg.Role == domain.RoleAssistant && len(msg.Citations) > 0 {
		lines = append(lines, v.renderCitations(msg)...)
	}

	return lines
}

// renderCitations renders the citation references under an assistant reply.
func (v *View) renderCitations(msg *domain.Message) []string {
	highlighted := v.citationFocus && v.isLatestAssistant(msg)

	lines := make([]string, 0, len(msg.Citations))
	for i, cit := range msg.Citations {
		ref := fmt.Sprintf("  [%d] %s, p.%d", i+1, cit.DocumentTitle, cit.PageNumber)
		if highlighted && i == v.citationIdx {
			lines = append(lines, v.styles.Selected.Render(ref))
		} else {
			lines = append(lines, v.styles.Citation.Render(ref))
		}
	}
	return lines
}

// isLatestAssistant reports whether msg is the most recent assistant message.
func (v *View) isLatestAssistant(msg *domain.Message) bool {
	for i := len(v.transcript) - 1; i >= 0; i-- {
		if v.transcript[i].Role == domain.RoleAssistant {
			return &v.transcript[i] == msg
		}
	}
	return false
}

// contentWidth returns the width available for message text.
func (v *View) contentWidth() int {
	w := v.width - 6
	if w < 20 {
		w = 20
	}
	return w
}

// transcriptLines returns how many transcript lines fit on screen.
func (v *View) transcriptLines() int {
	// Reserve lines for header, spinner/error, input, and status bar
	reserved := 10
	available := v.height - reserved
	if available < 4 {
		available = 4
	}
	return available
}

// wrap splits text into lines no longer than width.
func wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if raw == "" {
			lines = append(lines, "")
			continue
		}

		words := strings.Fields(raw)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			if len(current)+1+len(word) > width {
				lines = append(lines, current)
				current = word
				continue
			}
			current += " " + word
		}
		lines = append(lines, current)
	}
	return lines
}

// SetConversation loads an existing conversation into the view.
func (v *View) SetConversation(conv domain.Conversation) {
	v.conversation = &conv
	v.transcript = conv.Messages
	v.state = stateIdle
	v.err = nil
	v.pendingQuery = ""
	v.citationFocus = false
	v.citationIdx = -1
	v.input.Reset()
	v.input.Focus()
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
	v.statusbar.SetTitle(conv.Title)
}

// Reset clears the view for a fresh conversation.
func (v *View) Reset() {
	v.conversation = nil
	v.transcript = nil
	v.state = stateIdle
	v.err = nil
	v.pendingQuery = ""
	v.citationFocus = false
	v.citationIdx = -1
	v.input.Reset()
	v.input.Focus()
	v.statusbar.Clear()
	v.statusbar.SetTitle("")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current input value.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the input value.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Conversation returns the active conversation, or nil before the first turn.
func (v *View) Conversation() *domain.Conversation {
	return v.conversation
}

// Transcript returns the displayed message history.
func (v *View) Transcript() []domain.Message {
	return v.transcript
}

// Awaiting returns whether a turn is in flight.
func (v *View) Awaiting() bool {
	return v.state == stateAwaiting
}

// CitationFocused returns whether a citation is highlighted.
func (v *View) CitationFocused() bool {
	return v.citationFocus
}

// CitationIndex returns the highlighted citation index, or -1.
func (v *View) CitationIndex() int {
	return v.citationIdx
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
