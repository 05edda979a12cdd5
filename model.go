package main

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloomfi/bloomfi/internal/api"
	"github.com/bloomfi/bloomfi/internal/config"
	"github.com/bloomfi/bloomfi/internal/session"
)

// ---------------------------------------------------------------------------
// Tabs
// ---------------------------------------------------------------------------

const (
	tabDashboard = 0
	tabAccounts  = 1
	tabBudget    = 2
	tabSettings  = 3
	tabCount     = 4
)

var tabNames = []string{"Dashboard", "Accounts", "Budget", "Settings"}

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	Quit      key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	UpDown    key.Binding
	Enter     key.Binding
	Close     key.Binding
	Filter    key.Binding
	DateRng   key.Binding
	Clear     key.Binding
	Reload    key.Binding
	Preset    key.Binding
	MonthNav  key.Binding
	PeriodNav key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		UpDown:    key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("j/k", "navigate")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filters")),
		DateRng:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "date range")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Preset:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preset")),
		MonthNav:  key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "month")),
		PeriodNav: key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "period")),
	}
}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type dataLoadedMsg struct {
	accounts     []account
	transactions []transaction
	err          error
}

// modalTxLoadedMsg carries the request sequence number it answers. The modal
// drops any message whose seq is not the latest one issued; there is no way
// to cancel an in-flight fetch, only to ignore its result.
type modalTxLoadedMsg struct {
	seq  int
	rows []transaction
	err  error
}

type loginDoneMsg struct {
	sess session.Session
	err  error
}

type resetRequestedMsg struct {
	err error
}

type settingsSavedMsg struct {
	err error
}

// ---------------------------------------------------------------------------
// Account transaction modal state
// ---------------------------------------------------------------------------

// accountModal caches the transaction list fetched when it opened; preset
// switches re-filter the cache instead of refetching. Closing discards the
// cache and restores the accounts-grid cursor it opened from.
type accountModal struct {
	open        bool
	accountID   string // accountAll or a single account id
	title       string
	number      string
	balance     float64
	cache       []transaction
	preset      int
	loading     bool
	requestSeq  int
	returnFocus int
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type model struct {
	cfg    config.Config
	sess   session.Session
	source dataSource
	client *api.Client
	now    func() time.Time

	width  int
	height int

	activeTab int
	status    string
	errBanner string // dismissible fetch-failure banner; empty = none
	ready     bool
	loading   bool

	accounts        []account
	allTransactions []transaction
	filtered        []transaction

	// dashboard
	criteria   filterCriteria
	cursor     int
	topIndex   int
	showFilter bool
	form       filterForm
	showCal    bool
	cal        calendarState

	// accounts tab
	acctCursor int
	modal      accountModal

	// budget tab
	budget budgetState

	// login screen
	login loginForm

	// settings tab
	settings settingsForm

	keys keyMap
}

func newModel(cfg config.Config, sess session.Session, src dataSource, client *api.Client) model {
	now := time.Now
	return model{
		cfg:       cfg,
		sess:      sess,
		source:    src,
		client:    client,
		now:       now,
		activeTab: tabDashboard,
		criteria:  defaultCriteria(now()),
		form:      newFilterForm(),
		login:     newLoginForm(),
		settings:  newSettingsForm(cfg),
		budget:    newBudgetState(),
		keys:      newKeyMap(),
		status:    "Loading...",
	}
}

func (m model) Init() tea.Cmd {
	if !m.sess.LoggedIn() {
		return m.login.focusCmd()
	}
	return loadDataCmd(m.source)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInWindow()
		return m, nil
	case dataLoadedMsg:
		return m.handleDataLoaded(msg)
	case modalTxLoadedMsg:
		return m.handleModalTxLoaded(msg)
	case loginDoneMsg:
		return m.handleLoginDone(msg)
	case resetRequestedMsg:
		return m.handleResetRequested(msg)
	case settingsSavedMsg:
		if msg.err != nil {
			m.status = "Save failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "Settings saved."
		return m, nil
	case tea.KeyMsg:
		if !m.sess.LoggedIn() {
			return m.updateLogin(msg)
		}
		if m.showCal {
			return m.updateCalendar(msg)
		}
		if m.showFilter {
			return m.updateFilterForm(msg)
		}
		if m.modal.open {
			return m.updateModal(msg)
		}
		return m.updateMain(msg)
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Message handlers
// ---------------------------------------------------------------------------

func (m model) handleDataLoaded(msg dataLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		// A failed fetch degrades to an empty view plus a banner; the user
		// reloads manually with r.
		m.errBanner = "Failed to load data: " + msg.err.Error()
		m.ready = true
		m.status = "Press r to retry."
		return m, nil
	}
	m.accounts = msg.accounts
	m.allTransactions = msg.transactions
	m.refilter()
	m.ready = true
	m.errBanner = ""
	if m.status == "" || m.status == "Loading..." {
		m.status = "Ready. Press f for filters, d for date range."
	}
	return m, nil
}

func (m model) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.login.busy = false
	if msg.err != nil {
		m.login.errMsg = loginErrorText(msg.err)
		return m, nil
	}
	m.sess = msg.sess
	if m.client != nil {
		m.client = m.client.WithToken(msg.sess.Token)
	}
	if m.cfg.API.Source == config.SourceAPI {
		m.source = apiSource{client: m.client}
	}
	m.loading = true
	m.status = "Loading..."
	return m, loadDataCmd(m.source)
}

func (m model) handleResetRequested(msg resetRequestedMsg) (tea.Model, tea.Cmd) {
	m.login.busy = false
	if msg.err != nil {
		m.login.errMsg = loginErrorText(msg.err)
		return m, nil
	}
	m.login.info = "If that email exists, a reset link is on its way."
	m.login.errMsg = ""
	return m, nil
}

// handleModalTxLoaded fills the modal cache, unless the answer is stale.
func (m model) handleModalTxLoaded(msg modalTxLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.modal.open || msg.seq != m.modal.requestSeq {
		return m, nil // stale response for a superseded request
	}
	m.modal.loading = false
	if msg.err != nil {
		m.errBanner = "Failed to load transactions: " + msg.err.Error()
		m.modal.cache = nil
		return m, nil
	}
	m.modal.cache = msg.rows
	return m, nil
}

// ---------------------------------------------------------------------------
// Main key handling (no modal open)
// ---------------------------------------------------------------------------

func (m model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Printable keys typed into a focused text field go to that field, not
	// the global bindings, so a URL with a q in it does not quit the app.
	if msg.Type == tea.KeyRunes {
		switch {
		case m.activeTab == tabBudget && m.budget.editing:
			return m.updateBudget(msg)
		case m.activeTab == tabSettings && m.settings.focus != settingSource:
			return m.updateSettings(msg)
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.activeTab = (m.activeTab + 1) % tabCount
		return m, nil
	case "shift+tab":
		m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		return m, nil
	case "x":
		m.errBanner = ""
		return m, nil
	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status = "Reloading..."
		return m, loadDataCmd(m.source)
	}

	switch m.activeTab {
	case tabDashboard:
		return m.updateDashboard(msg)
	case tabAccounts:
		return m.updateAccounts(msg)
	case tabBudget:
		return m.updateBudget(msg)
	case tabSettings:
		return m.updateSettings(msg)
	}
	return m, nil
}

// refilter re-runs the pipeline against the committed criteria. The filtered
// view is replaced wholesale; nothing patches it incrementally.
func (m *model) refilter() {
	m.filtered = sortForDisplay(applyFilters(m.allTransactions, m.criteria))
	m.cursor = 0
	m.topIndex = 0
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m model) View() string {
	if !m.sess.LoggedIn() {
		return m.loginView()
	}
	if !m.ready {
		return statusStyle.Render(m.status)
	}

	header := renderHeader(appName, m.activeTab, m.width)

	var body string
	switch m.activeTab {
	case tabDashboard:
		body = m.dashboardView()
	case tabAccounts:
		body = m.accountsView()
	case tabBudget:
		body = m.budgetView()
	case tabSettings:
		body = m.settingsView()
	default:
		body = m.dashboardView()
	}

	if m.errBanner != "" {
		body = renderErrorBanner(m.errBanner, m.sectionContentWidth()) + "\n" + body
	}

	main := header + "\n\n" + body
	statusLine := m.renderStatus(m.status)
	footer := m.renderFooter(m.footerBindings())

	switch {
	case m.showCal:
		return m.composeModal(main, statusLine, footer, m.calendarPopupView())
	case m.showFilter:
		return m.composeModal(main, statusLine, footer, m.filterPopupView())
	case m.modal.open:
		return m.composeModal(main, statusLine, footer, m.accountModalView())
	}
	return m.placeWithFooter(main, statusLine, footer)
}

func (m model) footerBindings() []key.Binding {
	k := m.keys
	switch {
	case m.showCal:
		return []key.Binding{k.Enter, k.MonthNav, k.Close}
	case m.showFilter:
		return []key.Binding{k.Enter, k.Close}
	case m.modal.open:
		return []key.Binding{k.Preset, k.Close, k.Quit}
	case m.activeTab == tabAccounts:
		return []key.Binding{k.NextTab, k.UpDown, k.Enter, k.Quit}
	case m.activeTab == tabBudget:
		return []key.Binding{k.NextTab, k.UpDown, k.Enter, k.PeriodNav, k.Quit}
	case m.activeTab == tabSettings:
		return []key.Binding{k.NextTab, k.UpDown, k.Enter, k.Quit}
	}
	return []key.Binding{k.NextTab, k.Filter, k.DateRng, k.Clear, k.Quit}
}

// ---------------------------------------------------------------------------
// Layout helpers
// ---------------------------------------------------------------------------

func (m *model) visibleRows() int {
	if m.height == 0 {
		return 10
	}
	frameV := listBoxStyle.GetVerticalFrameSize()
	headerHeight := 1
	headerGap := 1
	greetingHeight := 1
	sectionHeaderHeight := 2
	summaryHeight := frameV + sectionHeaderHeight + summaryLineCount()
	chartHeight := frameV + sectionHeaderHeight + chartMaxBars
	trendHeight := frameV + sectionHeaderHeight + trendChartHeight
	sectionGap := 1
	tableHeaderHeight := 1
	scrollIndicator := 1
	available := m.height - 2 - headerHeight - headerGap - greetingHeight - summaryHeight - sectionGap - chartHeight - sectionGap - trendHeight - sectionGap - frameV - sectionHeaderHeight - tableHeaderHeight - scrollIndicator
	if available < 3 {
		available = 3
	}
	if available > 20 {
		available = 20
	}
	return available
}

func (m *model) sectionWidth() int {
	if m.width == 0 {
		return 80
	}
	width := m.width - 4
	if width < 20 {
		width = m.width
	}
	return width
}

func (m *model) sectionContentWidth() int {
	if m.width == 0 {
		return 80
	}
	frameH := listBoxStyle.GetHorizontalFrameSize()
	contentWidth := m.sectionWidth() - frameH
	if contentWidth < 20 {
		contentWidth = 20
	}
	return contentWidth
}

func (m *model) ensureCursorInWindow() {
	visible := m.visibleRows()
	if visible <= 0 {
		return
	}
	if m.cursor < m.topIndex {
		m.topIndex = m.cursor
	} else if m.cursor >= m.topIndex+visible {
		m.topIndex = m.cursor - visible + 1
	}
	maxTop := len(m.filtered) - visible
	if maxTop < 0 {
		maxTop = 0
	}
	if m.topIndex > maxTop {
		m.topIndex = maxTop
	}
	if m.topIndex < 0 {
		m.topIndex = 0
	}
}

func (m *model) setStatus(text string) {
	m.status = text
}
