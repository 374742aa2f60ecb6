// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"github.com/taibuivan/somalitag/internal/catalog"
)

// KeyEscape is the key name that dismisses the overlay.
const KeyEscape = "Escape"

// ScrollLock suppresses background scrolling while held.
type ScrollLock interface {
	Acquire()
	Release()
}

// BodyScroll is a [ScrollLock] over the page body. Release is idempotent.
type BodyScroll struct {
	locked bool
}

func (b *BodyScroll) Acquire() { b.locked = true }
func (b *BodyScroll) Release() { b.locked = false }

// Locked reports whether background scrolling is currently suppressed.
func (b *BodyScroll) Locked() bool { return b.locked }

// Overlay is the detail overlay state machine: closed, or open on one profile.
//
// The scroll lock is held exactly while the overlay is open. Teardown releases
// it unconditionally.
type Overlay struct {
	lock    ScrollLock
	profile *catalog.Profile
}

func NewOverlay(lock ScrollLock) *Overlay {
	return &Overlay{lock: lock}
}

// Open shows a profile. Opening while already open swaps the profile and keeps the lock.
func (o *Overlay) Open(profile catalog.Profile) {
	if o.profile == nil {
		o.lock.Acquire()
	}
	o.profile = &profile
}

// Close hides the overlay. Closing a closed overlay is a no-op.
func (o *Overlay) Close() {
	if o.profile == nil {
		return
	}
	o.profile = nil
	o.lock.Release()
}

// HandleKey applies a key press and reports whether it closed the overlay.
func (o *Overlay) HandleKey(key string) bool {
	if key != KeyEscape || o.profile == nil {
		return false
	}
	o.Close()
	return true
}

// Teardown closes the overlay and releases the lock even if it was never acquired.
func (o *Overlay) Teardown() {
	o.profile = nil
	o.lock.Release()
}

// IsOpen reports whether a profile is shown.
func (o *Overlay) IsOpen() bool {
	return o.profile != nil
}

// Profile returns the shown profile.
func (o *Overlay) Profile() (catalog.Profile, bool) {
	if o.profile == nil {
		return catalog.Profile{}, false
	}
	return *o.profile, true
}
