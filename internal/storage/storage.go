package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/gian-ai/assistant-be/internal/models"
)

// Storage defines the persistence operations used by the handlers.
// Expected absence is signaled with a boolean, never an error; the
// handlers decide what a miss means for the HTTP response.
type Storage interface {
	// Users
	GetUser(id int) (models.User, bool)
	GetUserByUsername(username string) (models.User, bool)
	CreateUser(in models.InsertUser) models.User

	// Messages
	GetMessages() []models.Message
	CreateMessage(in models.InsertMessage) models.Message
	ClearMessages()

	// Reminders
	GetReminders() []models.Reminder
	GetReminderByID(id int) (models.Reminder, bool)
	CreateReminder(in models.InsertReminder) models.Reminder
	UpdateReminder(id int, patch models.ReminderPatch) (models.Reminder, bool)
	DeleteReminder(id int) bool

	// Settings
	GetSetting(key string) (models.Setting, bool)
	SetSetting(key, value string) models.Setting
	GetSettings() []models.Setting
}

// MemStorage keeps every collection in process memory: one map and one
// id counter per entity kind, behind a single coarse lock. Ids start at
// 1 and are never reused, even after deletion or a bulk clear. State is
// lost on restart; that is the intended lifecycle.
type MemStorage struct {
	mu  sync.RWMutex
	now func() time.Time

	users     map[int]models.User
	messages  map[int]models.Message
	reminders map[int]models.Reminder
	settings  map[string]models.Setting

	nextUserID     int
	nextMessageID  int
	nextReminderID int
	nextSettingID  int
}

// NewMemStorage creates an empty store.
func NewMemStorage() *MemStorage {
	return &MemStorage{
		now:            time.Now,
		users:          make(map[int]models.User),
		messages:       make(map[int]models.Message),
		reminders:      make(map[int]models.Reminder),
		settings:       make(map[string]models.Setting),
		nextUserID:     1,
		nextMessageID:  1,
		nextReminderID: 1,
		nextSettingID:  1,
	}
}

// GetUser retrieves a user by id.
func (s *MemStorage) GetUser(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	return user, ok
}

// GetUserByUsername scans for a user with the given username. Duplicate
// usernames are not rejected on write, so the earliest id wins here.
func (s *MemStorage) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var match models.User
	found := false
	for _, user := range s.users {
		if user.Username != username {
			continue
		}
		if !found || user.ID < match.ID {
			match = user
			found = true
		}
	}
	return match, found
}

// CreateUser stores a new user and returns it with its assigned id.
func (s *MemStorage) CreateUser(in models.InsertUser) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:       s.nextUserID,
		Username: in.Username,
		Password: in.Password,
	}
	s.nextUserID++
	s.users[user.ID] = user
	return user
}

// GetMessages returns a fresh slice of all messages, ascending by
// timestamp. Later mutations do not affect an already-returned slice.
func (s *MemStorage) GetMessages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Message, 0, len(s.messages))
	for _, msg := range s.messages {
		out = append(out, msg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID < out[j].ID
		}
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// CreateMessage stores a new message, stamping it with the current time.
func (s *MemStorage) CreateMessage(in models.InsertMessage) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := models.Message{
		ID:        s.nextMessageID,
		Content:   in.Content,
		Sender:    in.Sender,
		Timestamp: s.now(),
	}
	s.nextMessageID++
	s.messages[msg.ID] = msg
	return msg
}

// ClearMessages removes every message. The id counter keeps counting,
// so messages created afterwards never reuse a cleared id.
func (s *MemStorage) ClearMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = make(map[int]models.Message)
}

// GetReminders returns a fresh slice of all reminders, ascending by
// their scheduled datetime.
func (s *MemStorage) GetReminders() []models.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Reminder, 0, len(s.reminders))
	for _, rem := range s.reminders {
		out = append(out, rem)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Datetime.Equal(out[j].Datetime) {
			return out[i].ID < out[j].ID
		}
		return out[i].Datetime.Before(out[j].Datetime)
	})
	return out
}

// GetReminderByID retrieves a reminder by id.
func (s *MemStorage) GetReminderByID(id int) (models.Reminder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rem, ok := s.reminders[id]
	return rem, ok
}

// CreateReminder stores a new reminder. Completed starts false and
// CreatedAt is stamped by the store; an omitted description stays nil.
func (s *MemStorage) CreateReminder(in models.InsertReminder) models.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	rem := models.Reminder{
		ID:          s.nextReminderID,
		Title:       in.Title,
		Description: in.Description,
		Datetime:    in.Datetime,
		Completed:   false,
		CreatedAt:   s.now(),
	}
	s.nextReminderID++
	s.reminders[rem.ID] = rem
	return rem
}

// UpdateReminder merges the non-nil patch fields onto the stored
// reminder, last write wins per field. Returns false when the id is
// unknown; an update miss never creates.
func (s *MemStorage) UpdateReminder(id int, patch models.ReminderPatch) (models.Reminder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rem, ok := s.reminders[id]
	if !ok {
		return models.Reminder{}, false
	}

	if patch.Title != nil {
		rem.Title = *patch.Title
	}
	if patch.Description != nil {
		rem.Description = patch.Description
	}
	if patch.Datetime != nil {
		rem.Datetime = *patch.Datetime
	}
	if patch.Completed != nil {
		rem.Completed = *patch.Completed
	}
	s.reminders[id] = rem
	return rem, true
}

// DeleteReminder removes a reminder if present and reports whether a
// removal occurred. Deleting a missing id is a no-op, not an error.
func (s *MemStorage) DeleteReminder(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reminders[id]; !ok {
		return false
	}
	delete(s.reminders, id)
	return true
}

// GetSetting retrieves a setting by its key.
func (s *MemStorage) GetSetting(key string) (models.Setting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	setting, ok := s.settings[key]
	return setting, ok
}

// SetSetting upserts a setting: an existing key keeps its id and takes
// the new value, a new key allocates the next id.
func (s *MemStorage) SetSetting(key, value string) models.Setting {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.settings[key]; ok {
		existing.Value = value
		s.settings[key] = existing
		return existing
	}

	setting := models.Setting{
		ID:    s.nextSettingID,
		Key:   key,
		Value: value,
	}
	s.nextSettingID++
	s.settings[key] = setting
	return setting
}

// GetSettings returns a fresh slice of all settings in creation order.
func (s *MemStorage) GetSettings() []models.Setting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Setting, 0, len(s.settings))
	for _, setting := range s.settings {
		out = append(out, setting)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
