package app

// Application wires the store, activity log and conversation session
// from config. It is the single composition point shared by the TUI
// and the plain CLI subcommands.
type Application struct {
	Config     Config
	Logger     *Logger
	Store      Store
	Activities *ActivityLog
	Session    *ConversationSession
}

func NewApplication(cfg Config) (*Application, error) {
	logger := NewLogger(DefaultLogWriter(cfg.StorageRoot))

	var store Store
	if cfg.StorageBackend == BackendBadger {
		if st, err := NewBadgerStore(cfg.StorageRoot); err == nil {
			store = st
		} else {
			// Fall back to the file backend rather than refusing to start.
			logger.Error("badger backend unavailable", map[string]interface{}{"error": err.Error()})
			store = NewFileStore(cfg.StorageRoot)
		}
	} else {
		store = NewFileStore(cfg.StorageRoot)
	}

	var lookup AnswerClient
	if cfg.LookupBaseURL != "" {
		lookup = NewHTTPAnswerClient(cfg.LookupBaseURL)
	}

	return &Application{
		Config:     cfg,
		Logger:     logger,
		Store:      store,
		Activities: NewActivityLog(store, logger),
		Session:    NewConversationSession(store, lookup, NewRandomSource(), logger),
	}, nil
}

func (a *Application) Close() error {
	if a.Store == nil {
		return nil
	}
	return a.Store.Close()
}
