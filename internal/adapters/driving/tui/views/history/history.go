// Package history provides the conversation history view for the TUI.
package history

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/tui/components/convlist"
	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ragchat-cli/internal/core/ports/driving"
)

// View lists saved conversations for resuming or deleting.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *convlist.ConversationList
	statusbar *status.Bar

	conversationService driving.ConversationService
	ctx                 context.Context

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new history view.
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

	bar := status.NewBar(s, km)
	bar.SetState(status.StateHistory)

	return &View{
		styles:              s,
		keymap:              km,
		list:                convlist.NewConversationList(s),
		statusbar:           bar,
		conversationService: conversationService,
		ctx:                 context.Background(),
		width:               80,
		height:              24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and loads the conversation list.
func (v *View) Init() tea.Cmd {
	return v.loadConversations()
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ConversationsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.list.SetConversations(msg.Conversations)
		return v, nil

	case messages.ConversationDeleted:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		return v, v.loadConversations()

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewChat}
		}
	}

	if msg.Type == tea.KeyEnter {
		conv := v.list.SelectedConversation()
		if conv == nil {
			return v, nil
		}
		selected := *conv
		return v, func() tea.Msg {
			return messages.ConversationSelected{Conversation: selected}
		}
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.list.MoveUp()
		return v, nil
	case tea.KeyDown:
		v.list.MoveDown()
		return v, nil
	}

	switch msg.String() {
	case "k":
		v.list.MoveUp()
		return v, nil
	case "j":
		v.list.MoveDown()
		return v, nil
	case "n":
		return v, func() tea.Msg {
			return messages.NewConversation{}
		}
	case "d":
		conv := v.list.SelectedConversation()
		if conv == nil {
			return v, nil
		}
		return v, v.deleteConversation(conv.ID)
	}

	return v, nil
}

// loadConversations returns a command that loads all conversations.
func (v *View) loadConversations() tea.Cmd {
	ctx := v.ctx
	svc := v.conversationService

	return func() tea.Msg {
		if svc == nil {
			return messages.ConversationsLoaded{Err: ErrNoConversationService}
		}
		convs, err := svc.List(ctx)
		return messages.ConversationsLoaded{Conversations: convs, Err: err}
	}
}

// deleteConversation returns a command that deletes one conversation.
func (v *View) deleteConversation(id string) tea.Cmd {
	ctx := v.ctx
	svc := v.conversationService

	return func() tea.Msg {
		if svc == nil {
			return messages.ConversationDeleted{ID: id, Err: ErrNoConversationService}
		}
		err := svc.Delete(ctx, id)
		return messages.ConversationDeleted{ID: id, Err: err}
	}
}

// View renders the history view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 6)

	sections = append(sections, v.styles.Title.Render("History"), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View())
	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetDimensions(width, height-6)
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

// Selected returns the index of the selected conversation.
func (v *View) Selected() int {
	return v.list.Selected()
}

// Count returns the number of listed conversations.
func (v *View) Count() int {
	return v.list.Count()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
