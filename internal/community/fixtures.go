// ABOUTME: Seed content for the community surfaces: volunteers, meetings, sponsors, testimonies
// ABOUTME: Static scripture, step studies, hotlines, and reflection prompts live here too
package community

import "github.com/anchorup/anchor/internal/models"

var seedVolunteers = []models.Volunteer{
	{ID: "v1", Name: "Martha", Title: models.TitleSister, SoberYears: 12, Status: models.VolunteerOnline, Specialty: "Grief & Recovery"},
	{ID: "v2", Name: "Robert", Title: models.TitleBrother, SoberYears: 5, Status: models.VolunteerOnline, Specialty: "Youth Support"},
	{ID: "v3", Name: "Sarah", Title: models.TitleSister, SoberYears: 8, Status: models.VolunteerInCall, Specialty: "Family Restoration"},
	{ID: "v4", Name: "Joe", Title: models.TitleBrother, SoberYears: 22, Status: models.VolunteerOnline, Specialty: "12 Step Deep Dive"},
}

var seedMeetings = []models.Meeting{
	{
		ID:          "m1",
		Title:       "Daily Bread Morning Devotional",
		Time:        "Today, 8:00 AM EST",
		Type:        models.MeetingFaithBased,
		Host:        "Sister Jill",
		Description: "A morning check-in to start the day with prayer and scripture.",
	},
	{
		ID:          "m2",
		Title:       "New Horizons Step 1 Study",
		Time:        "Today, 2:00 PM EST",
		Type:        models.MeetingAA,
		Host:        "Brother Mike",
		Description: "Deep dive into Powerlessness and Unmanageability.",
	},
	{
		ID:          "m3",
		Title:       "Late Night Safe Harbor SOS",
		Time:        "Tonight, 11:30 PM EST",
		Type:        models.MeetingFaithBased,
		Host:        "Brother Caleb",
		Description: "A drop-in meeting for those struggling with insomnia or late-night cravings.",
	},
	{
		ID:          "m4",
		Title:       "Sisters in Sobriety",
		Time:        "Tomorrow, 10:00 AM EST",
		Type:        models.MeetingWomenOnly,
		Host:        "Sister Sarah",
		Description: "A safe space for women to share strength and hope.",
	},
}

var seedSponsors = []models.Sponsor{
	{
		ID:           "s1",
		Name:         "Brother Caleb",
		AvatarColor:  "indigo",
		SoberTime:    "8 Years",
		Specialty:    []string{"Alcohol"},
		Availability: models.AvailabilityHigh,
		Bio:          "Saved by grace in 2016. Here to help navigate the first 90 days.",
	},
	{
		ID:           "s2",
		Name:         "Sister Sarah",
		AvatarColor:  "emerald",
		SoberTime:    "12 Years",
		Specialty:    []string{"Narcotics"},
		Availability: models.AvailabilityMedium,
		Bio:          "Mother of three, long-term recovery advocate. Walking through the fire.",
	},
}

var seedTestimonies = []models.Testimony{
	{
		ID:          "t1",
		UserName:    "Brother James",
		Title:       "From Darkness to Light",
		Content:     "I spent 15 years lost in addiction. Today, through Jesus Christ, I am 2 years clean.",
		Category:    models.CategorySubstances,
		PraiseCount: 124,
	},
	{
		ID:          "t2",
		UserName:    "Sister Anna",
		Title:       "Restored Identity",
		Content:     "He has restored my soul and shown me my true purpose.",
		Category:    models.CategoryOther,
		PraiseCount: 89,
	},
}

var seedPackages = []models.ImpactPackage{
	{
		ID:          "p1",
		Title:       "Dignity Kit",
		Cost:        "$15",
		Description: "Provides essential hygiene and personal care for one person struggling on the streets.",
		Items:       []string{"New Socks", "Toothbrush/Paste", "Sanitizer", "Deodorant", "Clean Wipes"},
	},
	{
		ID:          "p2",
		Title:       "Anchor Meal Pack",
		Cost:        "$25",
		Description: "A hot nutritious meal, clean water, and a snack for a street outreach circuit.",
		Items:       []string{"Warm Entrée", "Protein Bars", "Fresh Fruit", "Bottled Water", "Gospel Tract"},
	},
	{
		ID:          "p3",
		Title:       "Safe Harbor Placement",
		Cost:        "$75",
		Description: "Emergency placement in a secure, Christ-centered sanctuary for a vulnerable person.",
		Items:       []string{"Safe Bed", "Shower Access", "Clean Clothes", "Intake Counselor Support"},
	},
}

var seedMiracles = []string{
	"Brother Mark found sanctuary last night after 3 years on the street.",
	"12 Dignity Kits distributed in the downtown circuit this morning.",
	"Sister Elena celebrated 30 days sober in our Safe Harbor program.",
}

var seedParticipants = []models.Participant{
	{Name: "Sister Jill", Role: "Host"},
	{Name: "Brother Mike", Role: "Peer"},
	{Name: "Sister Anna", Role: "Peer"},
	{Name: "Robert P.", Role: "Peer"},
	{Name: "Sarah W.", Role: "Peer"},
	{Name: "Joe M.", Role: "Peer"},
}

var verses = []models.Verse{
	{ID: "v1", Category: models.VersePromises, Reference: "Jeremiah 29:11", Text: `"For I know the plans I have for you," declares the Lord, "plans to prosper you and not to harm you, plans to give you hope and a future."`},
	{ID: "v2", Category: models.VerseStrength, Reference: "Philippians 4:13", Text: "I can do all things through Christ who strengthens me."},
	{ID: "v3", Category: models.VerseComfort, Reference: "Psalm 23:4", Text: "Even though I walk through the darkest valley, I will fear no evil, for you are with me; your rod and your staff, they comfort me."},
	{ID: "v4", Category: models.VerseGuidance, Reference: "Proverbs 3:5-6", Text: "Trust in the Lord with all your heart and lean not on your own understanding; in all your ways submit to him, and he will make your paths straight."},
	{ID: "v5", Category: models.VerseStrength, Reference: "Isaiah 40:31", Text: "But those who hope in the Lord will renew their strength. They will soar on wings like eagles; they will run and not grow weary, they will walk and not be faint."},
	{ID: "v6", Category: models.VerseComfort, Reference: "Matthew 11:28", Text: "Come to me, all you who are weary and burdened, and I will give you rest."},
	{ID: "v7", Category: models.VersePromises, Reference: "Joshua 1:9", Text: "Have I not commanded you? Be strong and courageous. Do not be afraid; do not be discouraged, for the Lord your God will be with you wherever you go."},
	{ID: "v8", Category: models.VerseGuidance, Reference: "Psalm 119:105", Text: "Your word is a lamp for my feet, a light on my path."},
}

var steps = []models.RecoveryStep{
	{
		Number:      1,
		Title:       "Honesty",
		Principle:   "Powerlessness",
		Scripture:   `Romans 7:18 - "For I know that good itself does not dwell in me, that is, in my sinful nature. For I have the desire to do what is good, but I cannot carry it out."`,
		Description: "We admitted we were powerless over our addiction—that our lives had become unmanageable.",
		Questions: []string{
			"In what ways has my life become unmanageable lately?",
			"Can I identify a specific time this week when I felt completely powerless?",
			"What am I afraid will happen if I admit I can't do this alone?",
		},
	},
	{
		Number:      2,
		Title:       "Hope",
		Principle:   "Belief",
		Scripture:   `Philippians 2:13 - "For it is God who works in you to will and to act in order to fulfill his good purpose."`,
		Description: "Came to believe that a Power greater than ourselves could restore us to sanity.",
		Questions: []string{
			"Do I believe that restoration is actually possible for me?",
			"What does a 'Power greater than myself' look like in my daily life?",
			"What 'insane' behaviors am I still repeating?",
		},
	},
	{
		Number:      3,
		Title:       "Surrender",
		Principle:   "Trust",
		Scripture:   `Romans 12:1 - "Therefore, I urge you, brothers and sisters, in view of God's mercy, to offer your bodies as a living sacrifice, holy and pleasing to God."`,
		Description: "Made a decision to turn our will and our lives over to the care of God as we understood Him.",
		Questions: []string{
			"What specific parts of my life am I still trying to control?",
			"What does 'turning it over' feel like in my body?",
			"How can I practice surrender in the next 24 hours?",
		},
	},
	{
		Number:      4,
		Title:       "Courage",
		Principle:   "Self-Examination",
		Scripture:   `Lamentations 3:40 - "Let us examine our ways and test them, and let us return to the Lord."`,
		Description: "Made a searching and fearless moral inventory of ourselves.",
		Questions: []string{
			"What truth about myself have I been avoiding?",
			"Which resentments keep resurfacing when I am quiet?",
			"Who can I trust to sit with me while I look honestly at my past?",
		},
	},
	{
		Number:      5,
		Title:       "Integrity",
		Principle:   "Confession",
		Scripture:   `James 5:16 - "Therefore confess your sins to each other and pray for each other so that you may be healed."`,
		Description: "Admitted to God, to ourselves, and to another human being the exact nature of our wrongs.",
		Questions: []string{
			"What is the one thing I hoped I would never have to say out loud?",
			"Who is the safe person I can share my inventory with?",
			"What do I imagine changes once the secret is spoken?",
		},
	},
	{
		Number:      6,
		Title:       "Willingness",
		Principle:   "Readiness",
		Scripture:   `James 4:10 - "Humble yourselves before the Lord, and he will lift you up."`,
		Description: "Were entirely ready to have God remove all these defects of character.",
		Questions: []string{
			"Which defect of character am I still secretly attached to?",
			"What would my life look like without it?",
			"What makes me hesitate to let it go?",
		},
	},
	{
		Number:      7,
		Title:       "Humility",
		Principle:   "Transformation",
		Scripture:   `1 John 1:9 - "If we confess our sins, he is faithful and just and will forgive us our sins and purify us from all unrighteousness."`,
		Description: "Humbly asked Him to remove our shortcomings.",
		Questions: []string{
			"When did I last ask for help without qualifying it?",
			"What does humility look like for me this week?",
			"Which shortcoming showed up today, and how did I respond?",
		},
	},
	{
		Number:      8,
		Title:       "Love",
		Principle:   "Accountability",
		Scripture:   `Luke 6:31 - "Do to others as you would have them do to you."`,
		Description: "Made a list of all persons we had harmed, and became willing to make amends to them all.",
		Questions: []string{
			"Whose name is hardest to write on my list?",
			"What harm am I tempted to minimize?",
			"What does willingness mean when the other person may not forgive me?",
		},
	},
	{
		Number:      9,
		Title:       "Restoration",
		Principle:   "Amends",
		Scripture:   `Matthew 5:24 - "First go and be reconciled to them; then come and offer your gift."`,
		Description: "Made direct amends to such people wherever possible, except when to do so would injure them or others.",
		Questions: []string{
			"Which amends can I make this month?",
			"Where might a direct amends cause more harm than healing?",
			"How will I stay grounded if the conversation goes badly?",
		},
	},
	{
		Number:      10,
		Title:       "Perseverance",
		Principle:   "Maintenance",
		Scripture:   `1 Corinthians 10:12 - "So, if you think you are standing firm, be careful that you don't fall!"`,
		Description: "Continued to take personal inventory and when we were wrong promptly admitted it.",
		Questions: []string{
			"What did I get wrong today, and have I admitted it yet?",
			"What pattern keeps showing up in my nightly review?",
			"How quickly do I course-correct once I notice I am off the path?",
		},
	},
	{
		Number:      11,
		Title:       "Awareness",
		Principle:   "Connection",
		Scripture:   `Colossians 3:16 - "Let the message of Christ dwell among you richly."`,
		Description: "Sought through prayer and meditation to improve our conscious contact with God as we understood Him, praying only for knowledge of His will for us and the power to carry that out.",
		Questions: []string{
			"What does conscious contact feel like on an ordinary day?",
			"When is my mind quietest, and how can I protect that time?",
			"What am I praying for that is really my will, not His?",
		},
	},
	{
		Number:      12,
		Title:       "Service",
		Principle:   "Witness",
		Scripture:   `Galatians 6:1 - "Brothers and sisters, if someone is caught in a sin, you who live by the Spirit should restore that person gently."`,
		Description: "Having had a spiritual awakening as the result of these Steps, we tried to carry this message to others, and to practice these principles in all our affairs.",
		Questions: []string{
			"Who in my circle is where I was a year ago?",
			"How do I carry the message without preaching?",
			"Which principle is hardest to practice at home?",
		},
	},
}

var crisisResources = []models.CrisisResource{
	{
		Title:       "988 Suicide & Crisis Lifeline",
		Description: "Free, confidential support for people in distress, 24/7.",
		Phone:       "988",
		URL:         "https://988lifeline.org",
	},
	{
		Title:       "SAMHSA National Helpline",
		Description: "Treatment referral and information service for substance use disorders.",
		Phone:       "1-800-662-4357",
		URL:         "https://www.samhsa.gov/find-help/national-helpline",
	},
	{
		Title:       "Crisis Text Line",
		Description: "Text HOME to reach a trained crisis counselor any time.",
		Phone:       "741741",
		URL:         "https://www.crisistextline.org",
	},
}

var reflectionPrompts = []string{
	"What was your biggest victory today, no matter how small?",
	"Who did you connect with today that helped you stay anchored?",
	"What is one thing you're letting go of tonight?",
	"Where did you see Grace in your life today?",
	"If today was a storm, how did your anchor hold?",
	"What are you most looking forward to in your recovery tomorrow?",
}

// Verses returns the scripture bank, optionally filtered by category.
// An unknown category returns the full bank.
func Verses(category models.VerseCategory) []models.Verse {
	if !category.Valid() {
		return append([]models.Verse(nil), verses...)
	}
	return models.VersesByCategory(verses, category)
}

// Steps returns the twelve step studies in order.
func Steps() []models.RecoveryStep {
	return append([]models.RecoveryStep(nil), steps...)
}

// CrisisResources returns the emergency hotline entries. These are
// bundled, never fetched: the resources screen must work offline.
func CrisisResources() []models.CrisisResource {
	return append([]models.CrisisResource(nil), crisisResources...)
}

// ReflectionPrompts returns the journal reflection prompts in rotation
// order.
func ReflectionPrompts() []string {
	return append([]string(nil), reflectionPrompts...)
}
