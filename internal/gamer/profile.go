package gamer

import (
	"errors"
	"sync"
)

const (
	MaxLevel     = 99
	MinTagLen    = 3
	MaxTagLen    = 32
	MaxAvatarLen = 96
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrTagTooShort     = errors.New("tag too short")
	ErrTagTooLong      = errors.New("tag too long")
	ErrInvalidAvatar   = errors.New("avatar cid must be visible ascii")
)

// Profile is the per-player progression record: display tag, avatar CID,
// unredeemed experience and current level.
type Profile struct {
	Player     string `json:"player"`
	Tag        string `json:"tag,omitempty"`
	AvatarCID  string `json:"avatar_cid,omitempty"`
	Experience uint64 `json:"experience"`
	Level      uint8  `json:"level"`
}

// Registry stores profiles keyed by player id. Profiles spring into
// existence on first write.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
}

func NewRegistry() *Registry {
	return &Registry{profiles: make(map[string]*Profile)}
}

func (r *Registry) get(player string) *Profile {
	p, ok := r.profiles[player]
	if !ok {
		p = &Profile{Player: player}
		r.profiles[player] = p
	}
	return p
}

// Get returns a copy of the player's profile.
func (r *Registry) Get(player string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[player]
	if !ok {
		return Profile{}, ErrProfileNotFound
	}
	return *p, nil
}

func (r *Registry) SetTag(player, tag string) error {
	if len(tag) < MinTagLen {
		return ErrTagTooShort
	}
	if len(tag) > MaxTagLen {
		return ErrTagTooLong
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.get(player).Tag = tag
	return nil
}

// SetAvatar stores an IPFS-style CID. Multibase CIDs are visible ASCII, so
// anything outside 33..126 is rejected.
func (r *Registry) SetAvatar(player, cid string) error {
	if len(cid) == 0 || len(cid) > MaxAvatarLen {
		return ErrInvalidAvatar
	}
	for i := 0; i < len(cid); i++ {
		if cid[i] < 33 || cid[i] > 126 {
			return ErrInvalidAvatar
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.get(player).AvatarCID = cid
	return nil
}

// Grant adds experience and redeems as many levels as it affords.
func (r *Registry) Grant(player string, xp uint64) Profile {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.get(player)
	p.Experience += xp
	for p.Level < MaxLevel {
		need := ExpRequiredForLevel(p.Level + 1)
		if p.Experience < need {
			break
		}
		p.Experience -= need
		p.Level++
	}
	return *p
}

// ExpRequiredForLevel is the cost of going from level l-1 to l.
// Level 1 costs exactly 250; above that the curve is
// 250 + round(k * (l^2 - 1)) with k = 3046373812 / 1e6, chosen so the full
// climb to 99 lands near one billion experience.
func ExpRequiredForLevel(l uint8) uint64 {
	if l <= 1 {
		return 250
	}
	const kNum = 3_046_373_812
	const kDen = 1_000_000

	term := uint64(l)*uint64(l) - 1
	return 250 + (kNum*term+kDen/2)/kDen
}
