// ABOUTME: Typed records for the community surface: volunteers, sponsors, meetings, testimonies
// ABOUTME: Replaces the source's loosely-typed mock literals with closed value sets
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VolunteerStatus is the presence state shown on the fellowship screen.
type VolunteerStatus string

const (
	VolunteerOnline VolunteerStatus = "Online"
	VolunteerInCall VolunteerStatus = "In Call"
	VolunteerAway   VolunteerStatus = "Away"
)

// Volunteer is a peer-line volunteer available for calls.
type Volunteer struct {
	ID         string
	Name       string
	Title      TitlePrefix
	SoberYears int
	Status     VolunteerStatus
	Specialty  string
}

// CallPeer is the side-channel descriptor carried while the video-call
// screen is active: who the user is connected to, nothing more.
type CallPeer struct {
	Name  string
	Title TitlePrefix
}

// Availability describes how much capacity a sponsor has for new matches.
type Availability string

const (
	AvailabilityHigh    Availability = "High"
	AvailabilityMedium  Availability = "Medium"
	AvailabilityLimited Availability = "Limited"
)

// Sponsor is a mentor profile offered by the match screen. Only the
// requester's side of the relationship is modeled.
type Sponsor struct {
	ID           string
	Name         string
	AvatarColor  string
	SoberTime    string
	Specialty    []string
	Availability Availability
	Bio          string
}

// MeetingType is the closed set of scheduled meeting formats.
type MeetingType string

const (
	MeetingAA         MeetingType = "AA"
	MeetingNA         MeetingType = "NA"
	MeetingFaithBased MeetingType = "Faith-Based"
	MeetingWomenOnly  MeetingType = "Women Only"
	MeetingMenOnly    MeetingType = "Men Only"
)

// Meeting is a scheduled fellowship meeting.
type Meeting struct {
	ID          string
	Title       string
	Time        string
	Type        MeetingType
	Host        string
	Description string
}

// Participant is one tile in the meeting room grid.
type Participant struct {
	Name string
	Role string
}

// TestimonyCategory is the closed set of recovery testimony categories.
type TestimonyCategory string

const (
	CategorySubstances TestimonyCategory = "Substances"
	CategoryFood       TestimonyCategory = "Food"
	CategorySex        TestimonyCategory = "Sex"
	CategoryOther      TestimonyCategory = "Other"
)

// Testimony is a shared recovery story.
type Testimony struct {
	ID          string
	UserName    string
	Title       string
	Content     string
	Category    TestimonyCategory
	PraiseCount int
	CreatedAt   time.Time
}

// ShareText renders the testimony as a line suitable for passing to an
// external share target.
func (t Testimony) ShareText() string {
	return fmt.Sprintf("Read this victory from %s: %q", t.UserName, t.Content)
}

// Sender identifies who produced a chat message.
type Sender string

const (
	SenderUser  Sender = "user"
	SenderAI    Sender = "ai"
	SenderOther Sender = "other"
)

// Message is one turn in a support or sponsor chat.
type Message struct {
	ID         string
	Text       string
	Sender     Sender
	SenderName string
	CreatedAt  time.Time
}

// NewMessage creates a chat turn with a fresh id and timestamp.
func NewMessage(sender Sender, senderName, text string, now time.Time) Message {
	return Message{
		ID:         uuid.NewString(),
		Text:       text,
		Sender:     sender,
		SenderName: senderName,
		CreatedAt:  now,
	}
}

// CrisisResource is an emergency hotline entry.
type CrisisResource struct {
	Title       string
	Description string
	Phone       string
	URL         string
}

// ImpactPackage is a donation package offered by the outreach screen.
type ImpactPackage struct {
	ID          string
	Title       string
	Cost        string
	Description string
	Items       []string
}
