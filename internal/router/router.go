// ABOUTME: Navigation state machine over the closed set of named screens
// ABOUTME: Owns the active view plus the call/meeting side-channel state as one atomic value
package router

import (
	"sync"

	"github.com/anchorup/anchor/internal/models"
)

// View names one full-panel screen. The set is closed; navigation to
// anything outside it is a silent no-op.
type View string

const (
	ViewHome          View = "HOME"
	ViewVoiceSupport  View = "VOICE_SUPPORT"
	ViewTextSupport   View = "TEXT_SUPPORT"
	ViewTools         View = "TOOLS"
	ViewResources     View = "RESOURCES"
	ViewProfile       View = "PROFILE"
	ViewCommunity     View = "COMMUNITY"
	ViewPrayerWall    View = "PRAYER_WALL"
	ViewTwelveSteps   View = "TWELVE_STEPS"
	ViewSponsorMatch  View = "SPONSOR_MATCH"
	ViewSponsorChat   View = "SPONSOR_CHAT"
	ViewTestimonies   View = "TESTIMONIES"
	ViewScriptureBank View = "SCRIPTURE_BANK"
	ViewOutreach      View = "OUTREACH"
	ViewPeerConnect   View = "PEER_CONNECT"
	ViewJournal       View = "JOURNAL"
	ViewMeetings      View = "MEETINGS"
	ViewVideoCall     View = "VIDEO_CALL"
	ViewMeetingRoom   View = "MEETING_ROOM"
)

// Views lists every named screen.
func Views() []View {
	return []View{
		ViewHome, ViewVoiceSupport, ViewTextSupport, ViewTools, ViewResources,
		ViewProfile, ViewCommunity, ViewPrayerWall, ViewTwelveSteps,
		ViewSponsorMatch, ViewSponsorChat, ViewTestimonies, ViewScriptureBank,
		ViewOutreach, ViewPeerConnect, ViewJournal, ViewMeetings,
		ViewVideoCall, ViewMeetingRoom,
	}
}

// Valid reports whether v is a member of the closed view set.
func (v View) Valid() bool {
	for _, known := range Views() {
		if v == known {
			return true
		}
	}
	return false
}

// Session is the ephemeral navigation state: the active view plus the
// side-channel descriptors some screens need. It is emitted as one
// value so observers never see a partially-updated transition.
type Session struct {
	View           View
	ActiveCallPeer *models.CallPeer
	ActiveMeeting  *models.Meeting
}

// Renderable reports whether the session has the data its view needs.
// A video call without a peer or a meeting room without a meeting is a
// deliberate no-render, never an error.
func (s Session) Renderable() bool {
	switch s.View {
	case ViewVideoCall:
		return s.ActiveCallPeer != nil
	case ViewMeetingRoom:
		return s.ActiveMeeting != nil
	default:
		return s.View.Valid()
	}
}

// Router dispatches navigation intents. Every transition is a direct
// jump; there is no history stack beyond the hard-coded back-to-home
// affordance screens implement themselves.
type Router struct {
	mu      sync.Mutex
	session Session
}

// New starts the router on the home screen.
func New() *Router {
	return &Router{session: Session{View: ViewHome}}
}

// Session returns the current atomic navigation snapshot.
func (r *Router) Session() Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session
}

// Navigate jumps directly to the target view. Unknown targets are
// ignored. Navigating away from a call or meeting screen drops its
// side-channel state.
func (r *Router) Navigate(v View) {
	if !v.Valid() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if v != ViewVideoCall {
		r.session.ActiveCallPeer = nil
	}
	if v != ViewMeetingRoom {
		r.session.ActiveMeeting = nil
	}
	r.session.View = v
}

// StartCall atomically records the call peer and enters the video-call
// screen.
func (r *Router) StartCall(peer models.CallPeer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = Session{View: ViewVideoCall, ActiveCallPeer: &peer}
}

// EndCall clears the peer descriptor and returns to peer connect.
func (r *Router) EndCall() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = Session{View: ViewPeerConnect}
}

// JoinMeeting atomically records the meeting and enters the meeting
// room.
func (r *Router) JoinMeeting(m models.Meeting) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = Session{View: ViewMeetingRoom, ActiveMeeting: &m}
}

// LeaveMeeting clears the meeting descriptor and returns to the
// meetings list.
func (r *Router) LeaveMeeting() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = Session{View: ViewMeetings}
}

// Reset discards all session state on logout, regardless of the
// current screen. The next login starts back at home.
func (r *Router) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = Session{View: ViewHome}
}
