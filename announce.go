package dragdrop

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrAnnouncementNotFound is returned by MemoryLiveRegion.Remove for an
// unknown announcement id.
var ErrAnnouncementNotFound = errors.New("dragdrop: announcement not found")

// Politeness is the live-region urgency of an announcement.
type Politeness uint8

const (
	PolitenessAssertive Politeness = iota // interrupts the screen reader
	PolitenessPolite                      // waits for the screen reader to idle
)

// Announcement is a transient, screen-reader-only status message.
type Announcement struct {
	ID         string
	Text       string
	Politeness Politeness
	TTL        time.Duration
}

// LiveRegion is the host's accessibility output. Insert is called when an
// announcement is made and Remove once its TTL has elapsed.
type LiveRegion interface {
	Insert(a Announcement) error
	Remove(id string) error
}

// MemoryLiveRegion keeps active announcements in insertion order. Hosts can
// forward them to a TTS bridge or platform accessibility API.
type MemoryLiveRegion struct {
	active []Announcement
}

// NewMemoryLiveRegion creates an empty MemoryLiveRegion.
func NewMemoryLiveRegion() *MemoryLiveRegion {
	return &MemoryLiveRegion{}
}

// Insert appends a to the active announcements.
func (r *MemoryLiveRegion) Insert(a Announcement) error {
	r.active = append(r.active, a)
	return nil
}

// Remove drops the announcement with the given id.
func (r *MemoryLiveRegion) Remove(id string) error {
	for i := range r.active {
		if r.active[i].ID == id {
			copy(r.active[i:], r.active[i+1:])
			r.active[len(r.active)-1] = Announcement{}
			r.active = r.active[:len(r.active)-1]
			return nil
		}
	}
	return ErrAnnouncementNotFound
}

// Active returns a copy of the announcements currently in the region.
func (r *MemoryLiveRegion) Active() []Announcement {
	return append([]Announcement(nil), r.active...)
}

// announcer publishes drag lifecycle messages to a LiveRegion. It is a
// best-effort side channel: failures are logged and never reach the caller or
// the drag state.
type announcer struct {
	region LiveRegion
	sched  *scheduler
	log    logrus.FieldLogger
}

func (a *announcer) announce(text string, ttl time.Duration) {
	defer a.recoverFailure(text)
	ann := Announcement{
		ID:         uuid.NewString(),
		Text:       text,
		Politeness: PolitenessAssertive,
		TTL:        ttl,
	}
	if err := a.region.Insert(ann); err != nil {
		a.log.WithError(err).WithField("announcement", text).Warn("dragdrop: announcer failure on insert")
		return
	}
	a.sched.after(ttl, func() {
		defer a.recoverFailure(text)
		if err := a.region.Remove(ann.ID); err != nil {
			a.log.WithError(err).WithField("announcement", text).Warn("dragdrop: announcer failure on remove")
		}
	})
}

// recoverFailure must be deferred directly. It logs a panic from the live
// region instead of letting it unwind into the drag.
func (a *announcer) recoverFailure(text string) {
	if r := recover(); r != nil {
		a.log.WithField("announcement", text).Warnf("dragdrop: announcer failure: %v", r)
	}
}
