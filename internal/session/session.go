// Package session owns the live editor state for one host. All edits go
// through it in the order they arrive; readers only ever see complete
// board snapshots.
package session

import (
	"sync"

	"go.uber.org/zap"

	"github.com/zuzzo/Dungeon/internal/board"
	"github.com/zuzzo/Dungeon/internal/codec"
	"github.com/zuzzo/Dungeon/internal/editor"
	"github.com/zuzzo/Dungeon/internal/picking"
	"github.com/zuzzo/Dungeon/pkg/realtime"
)

// Event names published after state changes.
const (
	EventBoard     = "board"
	EventAssets    = "assets"
	EventSelection = "selection"
)

// Session serializes edits against one editor state. Input handling is
// expected to arrive from a single event loop, but the mutex keeps
// concurrent readers (renderer, autosave) safe regardless.
type Session struct {
	mu     sync.Mutex
	st     editor.State
	tools  editor.Tools
	log    *zap.Logger
	events *realtime.Broadcaster
}

// New creates a session over an empty board.
func New(log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		st:     editor.NewState(),
		tools:  editor.DefaultTools(),
		log:    log,
		events: realtime.NewBroadcaster(),
	}
}

// Events returns the broadcaster frontends subscribe to.
func (s *Session) Events() *realtime.Broadcaster {
	return s.events
}

// Board returns an independent snapshot of the current board.
func (s *Session) Board() board.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Board.Clone()
}

// Assets returns an independent copy of the asset placement list.
func (s *Session) Assets() []board.AssetPlacement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return board.CloneAssets(s.st.Assets)
}

// Tools returns the active tool configuration.
func (s *Session) Tools() editor.Tools {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tools
}

// SetTools replaces the tool configuration.
func (s *Session) SetTools(t editor.Tools) {
	s.mu.Lock()
	s.tools = t
	s.mu.Unlock()
}

// EditAt resolves a ground-plane point against the current tool mode and
// applies the resulting pick. This is the pointer-event entry point.
func (s *Session) EditAt(px, pz float32) editor.Signal {
	s.mu.Lock()
	defer s.mu.Unlock()
	pick := picking.Resolve(px, pz, s.tools.Mode == editor.ModeEdges)
	return s.applyLocked(pick)
}

// ApplyPick applies an already-resolved pick.
func (s *Session) ApplyPick(pick picking.Pick) editor.Signal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(pick)
}

func (s *Session) applyLocked(pick picking.Pick) editor.Signal {
	prev := s.st
	next, sig := editor.Apply(prev, s.tools, pick)
	s.st = next

	switch sig.Kind {
	case editor.SignalApplied:
		s.log.Debug("edit applied",
			zap.Stringer("pick", pick),
			zap.String("mode", string(s.tools.Mode)),
		)
		if !next.Board.Equal(prev.Board) {
			s.events.Publish(EventBoard)
		}
		if len(next.Assets) != len(prev.Assets) {
			s.events.Publish(EventAssets)
		}
		if next.LightSelection != prev.LightSelection || next.SelectedAsset != prev.SelectedAsset {
			s.events.Publish(EventSelection)
		}
	case editor.SignalRejected:
		s.log.Debug("edit rejected",
			zap.Stringer("pick", pick),
			zap.String("reason", sig.Message),
		)
	}
	return sig
}

// SelectedLight returns the cell index and properties of the selected
// light, if any.
func (s *Session) SelectedLight() (int, board.LightProperties, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.st.LightSelection
	if idx < 0 {
		return -1, board.LightProperties{}, false
	}
	obj := s.st.Board.Objects[idx]
	if obj.Type != board.ObjectLight || obj.Light == nil {
		return -1, board.LightProperties{}, false
	}
	return idx, *obj.Light, true
}

// UpdateSelectedLight replaces the selected light's properties, clamped.
// Returns false when no light is selected.
func (s *Session) UpdateSelectedLight(p board.LightProperties) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.st.LightSelection
	if idx < 0 || s.st.Board.Objects[idx].Type != board.ObjectLight {
		return false
	}
	next := s.st.Board.Clone()
	clamped := p.Clamped()
	next.Objects[idx].Light = &clamped
	s.st.Board = next
	s.events.Publish(EventBoard)
	return true
}

// SelectedAsset returns a copy of the selected asset placement, if any.
func (s *Session) SelectedAsset() (board.AssetPlacement, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assetByIDLocked(s.st.SelectedAsset)
}

func (s *Session) assetByIDLocked(id int64) (board.AssetPlacement, bool) {
	for _, a := range s.st.Assets {
		if a.ID == id && id != 0 {
			return a, true
		}
	}
	return board.AssetPlacement{}, false
}

// MoveAsset sets an asset's grid position, clamped into board bounds.
// This is the drag collaborator's entry point and bypasses cell dispatch.
func (s *Session) MoveAsset(id int64, x, y float64) bool {
	return s.mutateAsset(id, func(a *board.AssetPlacement) {
		a.X = x
		a.Y = y
	})
}

// ScaleAssetBy adjusts an asset's scale by delta, clamped to the legal
// range.
func (s *Session) ScaleAssetBy(id int64, delta float64) bool {
	return s.mutateAsset(id, func(a *board.AssetPlacement) {
		a.Scale += delta
	})
}

// SetAssetOffset sets an asset's vertical offset, clamped.
func (s *Session) SetAssetOffset(id int64, offset float64) bool {
	return s.mutateAsset(id, func(a *board.AssetPlacement) {
		a.YOffset = offset
	})
}

// RotateAsset sets an asset's rotation, normalized into [0,360).
func (s *Session) RotateAsset(id int64, degrees float64) bool {
	return s.mutateAsset(id, func(a *board.AssetPlacement) {
		a.Rotation = degrees
	})
}

func (s *Session) mutateAsset(id int64, fn func(*board.AssetPlacement)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.Assets {
		if s.st.Assets[i].ID == id {
			fn(&s.st.Assets[i])
			s.st.Assets[i] = s.st.Assets[i].Clamped()
			s.events.Publish(EventAssets)
			return true
		}
	}
	return false
}

// Export renders the current state as a board document.
func (s *Session) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return codec.Encode(s.st.Board, s.st.Assets)
}

// Load replaces the session state with a decoded document. A structural
// decode failure leaves the previous state fully intact. The asset id
// counter never moves backwards, so ids stay unique across loads.
func (s *Session) Load(data []byte) error {
	st, assets, nextID, err := codec.Decode(data)
	if err != nil {
		s.log.Warn("board document rejected", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.st.Board = st
	s.st.Assets = assets
	s.st.LightSelection = -1
	s.st.SelectedAsset = 0
	if nextID > s.st.NextAssetID {
		s.st.NextAssetID = nextID
	}
	s.mu.Unlock()

	s.log.Info("board document loaded", zap.Int("assets", len(assets)))
	s.events.Publish(EventBoard)
	s.events.Publish(EventAssets)
	return nil
}
