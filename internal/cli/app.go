// ABOUTME: Interactive client shell: one screen per named view, dispatched off the router
// ABOUTME: Errors surface at the screen boundary; the loop itself never dies on a handler failure
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/anchorup/anchor/internal/ai"
	"github.com/anchorup/anchor/internal/ai/voice"
	"github.com/anchorup/anchor/internal/audio"
	"github.com/anchorup/anchor/internal/community"
	"github.com/anchorup/anchor/internal/config"
	"github.com/anchorup/anchor/internal/models"
	"github.com/anchorup/anchor/internal/profile"
	"github.com/anchorup/anchor/internal/router"
)

// errQuit ends the run loop cleanly when the user asks to leave.
var errQuit = errors.New("quit")

// timeNow is a test seam for the wall clock.
var timeNow = time.Now

// VoiceDevices bundles the factories for a live voice session. Any of
// them may fail (no microphone, no permission); the voice screen
// reports the failure and returns without starting a session.
type VoiceDevices struct {
	DialTransport func(ctx context.Context) (voice.Transport, error)
	OpenCapture   func(ctx context.Context) (voice.Capture, error)
	OpenPlayback  func() (audio.Sink, audio.Clock, error)
}

// App wires the stores and services into the interactive shell.
type App struct {
	cfg       *config.Config
	logger    *slog.Logger
	profiles  *profile.Store
	router    *router.Router
	community community.Service
	ai        *ai.Client
	voice     *VoiceDevices

	reader *bufio.Reader
	out    io.Writer

	// sessionPrayers live only as long as the shell; the wall is not
	// persisted.
	sessionPrayers []string
}

// NewApp assembles the shell. The voice device factories may be nil,
// in which case the voice screen reports the feature unavailable.
func NewApp(cfg *config.Config, profiles *profile.Store, comm community.Service, aiClient *ai.Client, devices *VoiceDevices, in io.Reader, out io.Writer, logger *slog.Logger) *App {
	return &App{
		cfg:       cfg,
		logger:    logger,
		profiles:  profiles,
		router:    router.New(),
		community: comm,
		ai:        aiClient,
		voice:     devices,
		reader:    bufio.NewReader(in),
		out:       out,
	}
}

// Run drives the shell until the user quits or input ends. Each pass
// renders the screen the router points at; a screen that comes up
// without the state it needs falls back to home instead of erroring.
func (a *App) Run(ctx context.Context) error {
	if p := a.profiles.Load(); p != nil {
		fmt.Fprintf(a.out, "Welcome back, %s.\n", p.DisplayName())
	} else if err := a.splashScreen(ctx); err != nil {
		if errors.Is(err, errQuit) {
			return nil
		}
		return err
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		sess := a.router.Session()
		if !sess.Renderable() {
			a.router.Navigate(router.ViewHome)
			continue
		}

		err := a.renderView(ctx, sess)
		switch {
		case errors.Is(err, errQuit):
			return nil
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			// The screen failed; say so and land back home
			fmt.Fprintf(a.out, "Something went wrong: %v\n", err)
			a.logger.Warn("screen failed", "view", sess.View, "error", err)
			a.router.Navigate(router.ViewHome)
		}
	}
}

func (a *App) renderView(ctx context.Context, sess router.Session) error {
	switch sess.View {
	case router.ViewHome:
		return a.homeScreen(ctx)
	case router.ViewTextSupport:
		return a.textSupportScreen(ctx)
	case router.ViewVoiceSupport:
		return a.voiceSupportScreen(ctx)
	case router.ViewTools:
		return a.toolsScreen(ctx)
	case router.ViewResources:
		return a.resourcesScreen(ctx)
	case router.ViewProfile:
		return a.profileScreen(ctx)
	case router.ViewCommunity:
		return a.communityScreen(ctx)
	case router.ViewPrayerWall:
		return a.prayerWallScreen(ctx)
	case router.ViewTwelveSteps:
		return a.twelveStepsScreen(ctx)
	case router.ViewSponsorMatch:
		return a.sponsorMatchScreen(ctx)
	case router.ViewSponsorChat:
		return a.sponsorChatScreen(ctx)
	case router.ViewTestimonies:
		return a.testimoniesScreen(ctx)
	case router.ViewScriptureBank:
		return a.scriptureScreen(ctx)
	case router.ViewOutreach:
		return a.outreachScreen(ctx)
	case router.ViewPeerConnect:
		return a.peerConnectScreen(ctx)
	case router.ViewJournal:
		return a.journalScreen(ctx)
	case router.ViewMeetings:
		return a.meetingsScreen(ctx)
	case router.ViewVideoCall:
		return a.videoCallScreen(ctx, sess)
	case router.ViewMeetingRoom:
		return a.meetingRoomScreen(ctx, sess)
	default:
		a.router.Navigate(router.ViewHome)
		return nil
	}
}

// renderMessage prints one chat turn, labeling the speaker by sender.
func (a *App) renderMessage(m models.Message) {
	name := m.SenderName
	if m.Sender == models.SenderUser {
		name = "You"
	}
	fmt.Fprintf(a.out, "%s: %s\n", name, m.Text)
}

// logout ends the session. The persisted profile stays on disk so a
// later resume recovers it.
func (a *App) logout() {
	a.profiles.Clear()
	a.router.Reset()
	fmt.Fprintln(a.out, "You are logged out. Your progress is kept safe for when you return.")
}
