package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/showcase/config"
	"github.com/quasilyte/gdata"
)

// SavedSession is the state kept between runs
type SavedSession struct {
	Page string `json:"page"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for session storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Session.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSession loads the last session from disk
func LoadSession() (*SavedSession, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Session.Item)
	if err != nil {
		log.Printf("Warning: Could not load session: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// first run
		return nil, nil
	}

	var session SavedSession
	if err := json.Unmarshal(data, &session); err != nil {
		log.Printf("Warning: Could not parse saved session: %v", err)
		return nil, err
	}
	return &session, nil
}

// SaveSession saves the session to disk
func SaveSession(s *SavedSession) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize session: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Session.Item, data); err != nil {
		log.Printf("Warning: Could not save session: %v", err)
		return err
	}
	return nil
}

// SaveVisitedPage records key as the page to restore on the next run. It
// is the Visited hook of the page controller.
func SaveVisitedPage(key string) {
	_ = SaveSession(&SavedSession{Page: key})
}

// LastPage returns the page key of the saved session, or "".
func LastPage() string {
	s, err := LoadSession()
	if err != nil || s == nil {
		return ""
	}
	return s.Page
}
