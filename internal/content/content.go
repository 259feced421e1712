// Package content serves the static marketing data the site renders:
// services, programs, therapist profiles, downloadable resources and the
// video library. The data is compiled in; there is no admin surface for
// it.
package content

import (
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/therapists"
)

type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price,omitempty"`
	Bookable    bool   `json:"bookable"`
}

type Program struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Resource struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileName    string `json:"file_name"`
}

type SuggestedVideo struct {
	Name        string `json:"name"`
	VimeoURL    string `json:"vimeo_url"`
	DurationSec int    `json:"duration_sec"`
}

type Video struct {
	ID          string           `json:"id"`
	Therapist   string           `json:"therapist"`
	Topic       string           `json:"topic"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Suggested   []SuggestedVideo `json:"suggested,omitempty"`
}

func Services() []Service {
	return []Service{
		{
			ID:          "counselling-sessions",
			Title:       "Counselling Sessions",
			Description: "One-on-one therapeutic sessions tailored to your unique needs. Book online or in-person appointments with our experienced practitioners.",
			Price:       "$76",
			Bookable:    true,
		},
		{
			ID:          "professional-supervision",
			Title:       "Professional Supervision",
			Description: "Clinical supervision for counsellors and therapists. Develop your practice with guidance from seasoned professionals.",
			Price:       "$90",
			Bookable:    true,
		},
		{
			ID:          "anxiety-panic-management",
			Title:       "Anxiety & Panic Management",
			Description: "Learn to recognize anxiety signs and develop evidence-based coping strategies to regain control of your life.",
		},
		{
			ID:          "trauma-ptsd-support",
			Title:       "Trauma & PTSD Support",
			Description: "Specialized trauma-informed care to help you process difficult experiences and move toward healing safely.",
		},
		{
			ID:          "grief-loss-counselling",
			Title:       "Grief & Loss Counselling",
			Description: "Compassionate support through the natural human response to loss. Find your path through grief with professional guidance.",
		},
		{
			ID:          "self-esteem-building",
			Title:       "Self-Esteem Building",
			Description: "Develop self-worth, value your strengths, and build confidence through structured therapeutic programs.",
		},
	}
}

func Programs() []Program {
	return []Program{
		{ID: "anger-management", Title: "Anger Management", Description: "Structured therapeutic interventions designed to help individuals understand and manage anger responses effectively."},
		{ID: "anxiety-panic", Title: "Anxiety & Panic", Description: "Learn to recognize the signs of anxiety and develop proven strategies to regain calm and control."},
		{ID: "bipolar-support", Title: "Bipolar Support", Description: "Understanding that bipolar disorder is serious but treatable, with clear guidance for stability."},
		{ID: "self-esteem-building", Title: "Self-Esteem Building", Description: "Build self-worth, value your strengths, and develop confidence through evidence-based methods."},
		{ID: "grief-loss", Title: "Grief & Loss", Description: "Navigate the natural human response to loss with professional support and practical tools."},
		{ID: "trauma-ptsd", Title: "Trauma & PTSD", Description: "Specialized trauma-informed care to help process difficult experiences and move toward healing."},
		{ID: "journaling-practice", Title: "Journaling Practice", Description: "A powerful practice that helps untangle chaos and find clarity through guided reflection."},
		{ID: "suicide-prevention", Title: "Suicide Prevention", Description: "Help is available. Resources and support for those in crisis and their loved ones."},
	}
}

func Resources() []Resource {
	return []Resource{
		{
			ID:          "ptsd-trauma-checklist",
			Title:       "PTSD/Trauma Checklist",
			Description: "A comprehensive self-assessment tool to help identify and understand trauma symptoms with easy tick-box format.",
			FileName:    "PTSD_Trauma_Support_Team_Checklist_With_Tick_Boxes.pdf",
		},
		{
			ID:          "ptsd-trauma-journal",
			Title:       "PTSD/Trauma Journal",
			Description: "A detailed journaling guide designed specifically for processing trauma and PTSD experiences.",
			FileName:    "Detailed_PTSD_Trauma_Journal_IntuneMindset_withLogo.pdf",
		},
		{
			ID:          "reflection-journal",
			Title:       "Reflection Journal",
			Description: "Guided journaling prompts and templates designed for meaningful self-reflection and personal growth.",
			FileName:    "Reflection_Journal.pdf",
		},
		{
			ID:          "safety-plan-booklet",
			Title:       "Safety Plan Booklet",
			Description: "Create your personalized safety plan with step-by-step guidance for crisis situations and suicide prevention.",
			FileName:    "suicide_prevention_safety_plan_booklet_with_logos_lines.pdf",
		},
		{
			ID:          "stress-management-checklist",
			Title:       "Stress Management Checklist",
			Description: "A practical checklist and journal to help you identify, track, and manage your daily stress levels.",
			FileName:    "stress_management_journal_checklist_with_header_logo.pdf",
		},
		{
			ID:          "living-with-ocd",
			Title:       "Living With OCD",
			Description: "A comprehensive guide to understanding and managing Obsessive-Compulsive Disorder with practical strategies.",
			FileName:    "Living_With_OCD.pdf",
		},
	}
}

func TherapistProfiles() []therapists.Info {
	return therapists.All()
}

var videoLibrary = []Video{
	{
		ID: "anger-management", Therapist: "brett", Topic: "Anger Management",
		Title:       "Overcoming Anger: Tools for a Calmer Life",
		Description: "Discover how to transform anger into clarity and balance with expert guidance from Brett at Intune Mindset.",
		Suggested: []SuggestedVideo{
			{Name: "Intune Mindset Self-Care Anger Videos – Your Path to Calm, Clarity & Confidence", VimeoURL: "https://vimeo.com/1109909304", DurationSec: 68},
			{Name: "Understanding Anger and Emotional Regulation", VimeoURL: "https://vimeo.com/1106984138", DurationSec: 268},
			{Name: "Transforming Self-Talk for Anger Management", VimeoURL: "https://vimeo.com/1106983737", DurationSec: 369},
			{Name: "Mastering Your Anger Response", VimeoURL: "https://vimeo.com/1106983587", DurationSec: 292},
		},
	},
	{
		ID: "anxiety-panic-attack", Therapist: "brett", Topic: "Anxiety & Panic Attack",
		Title:       "Finding Calm in the Storm: Managing Anxiety & Panic",
		Description: "Learn practical strategies to regain control and find peace during moments of intense anxiety and panic.",
		Suggested: []SuggestedVideo{
			{Name: "Intune Mindset: Mastering Calm – Your Guide to Anxiety & Panic Recovery", VimeoURL: "https://vimeo.com/1110187003", DurationSec: 68},
			{Name: "Finding Calm in Anxiety", VimeoURL: "https://vimeo.com/1109847892", DurationSec: 307},
		},
	},
	{
		ID: "bipolar", Therapist: "brett", Topic: "Bipolar",
		Title:       "Bipolar Disorder: Navigating the Highs and Lows",
		Description: "Understanding the complexities of bipolar disorder and finding the right tools and support for a balanced life.",
		Suggested: []SuggestedVideo{
			{Name: "Understanding Bipolar Disorder and Finding Help", VimeoURL: "https://vimeo.com/1111856475", DurationSec: 102},
			{Name: "CBT for Managing Bipolar Disorder", VimeoURL: "https://vimeo.com/1110198166", DurationSec: 352},
			{Name: "From Chaos to Clarity – Living Well with Bipolar", VimeoURL: "https://vimeo.com/1110197975", DurationSec: 522},
		},
	},
	{
		ID: "overcoming-paranoid", Therapist: "brett", Topic: "Overcoming Paranoid",
		Title:       "Reclaiming Safety: Overcoming Paranoid Thoughts",
		Description: "Ground yourself and challenge distorted thinking to reclaim your sense of security and peace of mind.",
	},
	{
		ID: "stress-shame", Therapist: "brett", Topic: "Stress & Shame",
		Title:       "Lifting the Weight: Healing from Stress and Shame",
		Description: "You are not broken. Discover how to calm your nervous system and transform stress and shame into self-worth.",
		Suggested: []SuggestedVideo{
			{Name: "Understanding CBT for Stress Management", VimeoURL: "https://vimeo.com/1131971849", DurationSec: 368},
			{Name: "Healing from Shame: A Path Forward", VimeoURL: "https://vimeo.com/1131971398", DurationSec: 312},
			{Name: "Healing from Stress and Shame", VimeoURL: "https://vimeo.com/1131971326", DurationSec: 69},
		},
	},
	{
		ID: "trauma-ptsd", Therapist: "brett", Topic: "Trauma & PTSD",
		Title:       "Healing from Trauma: Your Journey to Recovery",
		Description: "Break the silence and find the tools you need to heal from past trauma and move forward with purpose.",
		Suggested: []SuggestedVideo{
			{Name: "Healing from Trauma: A Practical Guide", VimeoURL: "https://vimeo.com/1117329679", DurationSec: 909},
			{Name: "Understanding Trauma and Healing Steps", VimeoURL: "https://vimeo.com/1110793078", DurationSec: 419},
			{Name: "Healing from PTSD: Steps to Recovery", VimeoURL: "https://vimeo.com/1110793014", DurationSec: 99},
		},
	},
	{
		ID: "disrespect", Therapist: "brett", Topic: "Disrespect",
		Title:       "Standing Strong: Handling Disrespect with Dignity",
		Description: "Learn how to set firm boundaries and reclaim your power when facing disrespect at home, work, or online.",
	},
	{
		ID: "motivational-interviewing", Therapist: "brett", Topic: "Motivational Interviewing",
		Title:       "Unlock Your Potential: The Power of Motivational Interviewing",
		Description: "Discover your own reasons for change and take the first step toward a better future with Brett's guidance.",
		Suggested: []SuggestedVideo{
			{Name: "Understanding Motivational Interviewing Techniques", VimeoURL: "https://vimeo.com/1110209664", DurationSec: 395},
			{Name: "Empowering Change Through Motivational Interviewing", VimeoURL: "https://vimeo.com/1110209486", DurationSec: 299},
		},
	},
	{
		ID: "grief-loss", Therapist: "sandra", Topic: "Grief & Loss",
		Title:       "Healing Through Grief: Finding Meaning After Loss",
		Description: "Sandra guides you through the silent storm of grief, offering compassion and tools to help you carry your loss differently.",
		Suggested: []SuggestedVideo{
			{Name: "Healing Through Grief and Loss", VimeoURL: "https://vimeo.com/1111870644", DurationSec: 85},
			{Name: "Navigating Grief and Healing Together", VimeoURL: "https://vimeo.com/1111204474", DurationSec: 355},
			{Name: "Navigating Grief: You Are Not Alone", VimeoURL: "https://vimeo.com/1111184095", DurationSec: 231},
		},
	},
	{
		ID: "coercive-control", Therapist: "sandra", Topic: "Coercive Control",
		Title:       "Reclaiming Your Voice: Understanding Coercive Control",
		Description: "Recognize the signs of manipulation and power dynamics, and find the support you need to rebuild your autonomy.",
		Suggested: []SuggestedVideo{
			{Name: "Understanding Coercive Control and Its Impact", VimeoURL: "https://vimeo.com/1110200610", DurationSec: 413},
			{Name: "Understanding Financial Abuse in Relationships", VimeoURL: "https://vimeo.com/1109850653", DurationSec: 373},
		},
	},
	{
		ID: "sexual-abuse", Therapist: "sandra", Topic: "Sexual Abuse",
		Title:       "Courage to Heal: Recovery After Sexual Abuse",
		Description: "Recovery is possible. Discover a safe path to reclaim your life, your body, and your future with professional support.",
	},
	{
		ID: "suicide-prevention", Therapist: "sandra", Topic: "Suicide Prevention",
		Title:       "Holding on to Hope: A Guide to Suicide Prevention",
		Description: "You don't have to face the crisis alone. Learn the vital steps to stay safe and find the light in the darkness.",
		Suggested: []SuggestedVideo{
			{Name: "Self-Help Guide for Suicide Prevention", VimeoURL: "https://vimeo.com/1117714609", DurationSec: 250},
			{Name: "Suicide Prevention: Your Voice Matters", VimeoURL: "https://vimeo.com/1117714571", DurationSec: 75},
		},
	},
	{
		ID: "workplace-bullying", Therapist: "sandra", Topic: "Workplace Bullying",
		Title:       "Thriving at Work: Overcoming Workplace Bullying",
		Description: "Don't suffer in silence. Learn how to identify bullying behavior and protect your mental health on the job.",
	},
	{
		ID: "self-esteem", Therapist: "sandra", Topic: "Self-Esteem",
		Title:       "Building Unshakeable Self-Worth: Silence Your Inner Critic",
		Description: "Discover that you are enough. Sandra helps you build the confidence to show up as your authentic self.",
		Suggested: []SuggestedVideo{
			{Name: "Building Self-Esteem Together", VimeoURL: "https://vimeo.com/1131995956", DurationSec: 330},
			{Name: "Rebuild Your Self-Esteem Today", VimeoURL: "https://vimeo.com/1131995618", DurationSec: 65},
		},
	},
	{
		ID: "relaxation", Therapist: "sandra", Topic: "Relaxation",
		Title:       "The Art of Calm: Master Your Relaxation Practice",
		Description: "Reconnect with your inner peace through guided techniques designed to soothe the body and clear the mind.",
		Suggested: []SuggestedVideo{
			{Name: "Progressive Muscle Relaxation Session", VimeoURL: "https://vimeo.com/1110218507", DurationSec: 302},
			{Name: "Journey to Inner Peace", VimeoURL: "https://vimeo.com/1109854209", DurationSec: 216},
		},
	},
	{
		ID: "journaling", Therapist: "sandra", Topic: "Journaling",
		Title:       "Writing Your Way to Healing: The Power of Journaling",
		Description: "Untangle your thoughts and name your feelings. Discover how journaling can lead to clarity, healing, and peace.",
	},
}

func Videos() []Video {
	return videoLibrary
}

func VideoByID(id string) (Video, bool) {
	for _, v := range videoLibrary {
		if v.ID == id {
			return v, true
		}
	}
	return Video{}, false
}
