package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/tui/views/chat"
	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/tui/views/docviewer"
	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
)

// App is the root bubbletea model. It routes messages between the
// chat, history, and document page views.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	currentView messages.ViewType
	chatView    *chat.View
	historyView *history.View
	docView     *docviewer.View

	width  int
	height int
	ready  bool
	err    error
}

// NewApp creates the application model from the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, ErrInvalidPorts
	}
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		currentView: messages.ViewChat,
		chatView:    chat.NewView(s, km, ports.Conversation),
		historyView: history.NewView(s, km, ports.Conversation),
		docView:     docviewer.NewView(s, ports.Document),
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.chatView.WithContext(ctx)
	a.historyView.WithContext(ctx)
	a.docView.WithContext(ctx)
	return a
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	return a.chatView.Init()
}

// Update handles all incoming messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.TurnCompleted:
		if msg.Err != nil {
			a.err = msg.Err
		} else {
			a.err = nil
		}
		var cmd tea.Cmd
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	case messages.ConversationsLoaded, messages.ConversationDeleted:
		var cmd tea.Cmd
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case messages.ConversationSelected:
		a.chatView.SetConversation(msg.Conversation)
		a.currentView = messages.ViewChat
		return a, nil

	case messages.NewConversation:
		a.chatView.Reset()
		a.currentView = messages.ViewChat
		return a, nil

	case messages.CitationOpened:
		a.currentView = messages.ViewDocPage
		return a, a.docView.Open(msg.Citation)

	case messages.PageLoaded:
		var cmd tea.Cmd
		a.docView, cmd = a.docView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		return a.handleViewChanged(msg)

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a.forwardToCurrentView(msg)

	case messages.Quit:
		return a, tea.Quit
	}

	return a.forwardToCurrentView(msg)
}

// handleKeyMsg processes keyboard input at the application level.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if keymap.Matches(msg.String(), a.keymap.Quit) {
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc {
			a.currentView = messages.ViewChat
		}
		return a, nil

	case messages.ViewHistory:
		if keymap.Matches(msg.String(), a.keymap.Help) {
			a.currentView = messages.ViewHelp
			return a, nil
		}
	case messages.ViewChat, messages.ViewDocPage:
		// Keys go straight to the view
	}

	return a.forwardToCurrentView(msg)
}

// handleViewChanged switches the active view, initialising it if needed.
func (a *App) handleViewChanged(msg messages.ViewChanged) (tea.Model, tea.Cmd) {
	a.currentView = msg.View

	if msg.View == messages.ViewHistory {
		return a, a.historyView.Init()
	}
	return a, nil
}

// forwardToCurrentView routes a message to whichever view is active.
func (a *App) forwardToCurrentView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	case messages.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	case messages.ViewDocPage:
		a.docView, cmd = a.docView.Update(msg)
	case messages.ViewHelp:
		// Help is static
	}

	return a, cmd
}

// View renders the active view.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewChat:
		return a.chatView.View()
	case messages.ViewHistory:
		return a.historyView.View()
	case messages.ViewDocPage:
		return a.docView.View()
	case messages.ViewHelp:
		return a.renderHelpView()
	default:
		return a.chatView.View()
	}
}

// renderHelpView renders the static keybinding help.
func (a *App) renderHelpView() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Subtitle.Render("Navigation"))
	b.WriteString("\n")

	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Help.Render("[esc] back"))
	return b.String()
}

// SetDimensions sets the dimensions for the app and all views.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.chatView.SetDimensions(width, height)
	a.historyView.SetDimensions(width, height)
	a.docView.SetDimensions(width, height)
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// Query returns the chat input value.
func (a *App) Query() string {
	return a.chatView.Query()
}

// Transcript returns the displayed message history.
func (a *App) Transcript() []domain.Message {
	return a.chatView.Transcript()
}

// Conversation returns the active conversation, or nil before the first turn.
func (a *App) Conversation() *domain.Conversation {
	return a.chatView.Conversation()
}

// Err returns the last error, if any.
func (a *App) Err() error {
	return a.err
}
