package bot

import (
	"errors"
	"fmt"
)

// ErrIntentNotFound is returned by Catalog.Get for a name that is not in the
// catalog. Classification always yields catalog members, so hitting this
// means a programming error, not bad user input.
var ErrIntentNotFound = errors.New("intent not found")

// KeyedReply maps a trigger substring to a specific canned reply. Keyed
// replies live in a slice so they are checked in definition order.
type KeyedReply struct {
	Trigger string
	Reply   string
}

// Intent is a fixed topical category the bot can route a message to.
type Intent struct {
	// Name uniquely identifies the intent for the process lifetime
	Name string

	// Keywords are lowercase trigger substrings used for classification
	Keywords []string

	// Directive steers the generation service's tone and content
	Directive string

	// FallbackDefault is the canned reply when no keyed trigger matches
	FallbackDefault string

	// FallbackKeyed holds more specific canned replies, checked first
	FallbackKeyed []KeyedReply

	// SamplePhrases are example user messages, shown on the test page
	SamplePhrases []string
}

// Catalog is the immutable intent table, built once at startup.
type Catalog struct {
	intents       []Intent
	byName        map[string]int
	defaultIntent string
}

// NewCatalog builds a catalog from a fixed intent table. The first argument
// names the intent returned when classification matches nothing.
func NewCatalog(defaultIntent string, intents []Intent) *Catalog {
	byName := make(map[string]int, len(intents))
	for i, intent := range intents {
		byName[intent.Name] = i
	}
	return &Catalog{
		intents:       intents,
		byName:        byName,
		defaultIntent: defaultIntent,
	}
}

// Intents returns all intents in declaration order.
func (c *Catalog) Intents() []Intent {
	return c.intents
}

// Get looks up an intent by name.
func (c *Catalog) Get(name string) (Intent, error) {
	i, ok := c.byName[name]
	if !ok {
		return Intent{}, fmt.Errorf("%w: %s", ErrIntentNotFound, name)
	}
	return c.intents[i], nil
}

// DefaultIntent returns the name of the designated default intent.
func (c *Catalog) DefaultIntent() string {
	return c.defaultIntent
}

// DefaultCatalog returns the production intent table: the three Pneuma FAQ
// categories with their keywords, generation directives, and canned replies.
func DefaultCatalog() *Catalog {
	return NewCatalog("account_and_setup", []Intent{
		{
			Name:     "deals_and_offers",
			Keywords: []string{"deal", "offer", "discount", "save", "sweet", "special", "promo", "coupon"},
			Directive: `You are Pneuma's deals specialist. You help users discover and understand our current sweet-spot deals and exclusive offers.

Key facts about Pneuma deals:
- We offer curated deals across dining, travel, electronics, and lifestyle categories
- "Sweet-spot deals" are our signature high-value offers with 20-50% savings
- Deals refresh daily with new partners joining regularly
- Users can access deals through the Pneuma mobile app
- We partner with trusted brands and verified merchants only

Keep responses:
- Enthusiastic but genuine about savings
- Focused on current value propositions
- Brief and actionable
- Always direct users to check the app for latest offers

If you don't know specific deal details, direct users to the app or support@pneuma.com.`,
			FallbackDefault: "🔥 Great question about deals! Here are today's sweet-spot offers:\n• 25% off dining at partner restaurants\n• Double points on travel bookings\n• Flash electronics sale up to 40% off\n\nCheck the Pneuma app for the complete list - deals refresh daily! 📱",
			FallbackKeyed: []KeyedReply{
				{Trigger: "today", Reply: "Today's hot deals include dining discounts, travel rewards, and tech savings! Open your Pneuma app to see all current sweet-spot offers. 🎯"},
				{Trigger: "dining", Reply: "🍽️ Dining deals are amazing right now - 25% off at top restaurants plus double points! Check the Deals section in your Pneuma app."},
				{Trigger: "best", Reply: "Our best deals right now: Premium restaurant discounts, travel point multipliers, and electronics flash sales. All verified partners with real savings!"},
			},
			SamplePhrases: []string{
				"What deals do you have today?",
				"Show me sweet spot offers",
				"Any discounts on dining?",
				"What's the best deal right now?",
			},
		},
		{
			Name:     "mileage_and_rewards",
			Keywords: []string{"mile", "point", "transfer", "redeem", "reward", "loyalty", "earn", "accumulate"},
			Directive: `You are Pneuma's rewards program expert. You help users understand how to earn, transfer, and maximize their points and miles.

Key facts about Pneuma rewards:
- Users earn points on every purchase through partner merchants
- Points can be transferred to 15+ airline and hotel partners
- Transfer ratios vary by partner (typically 1:1 or 2:1)
- Standard users: 25K points/month transfer limit
- Premium users: 100K points/month transfer limit
- Elite users: Unlimited transfers
- Transfers process within 24-48 hours
- Points expire after 18 months of account inactivity

Keep responses:
- Clear and step-by-step for transfers
- Specific about limits and timeframes
- Educational about maximizing value
- Always mention checking account settings for personal limits

If asked about specific transfer rates or partner details, direct to the app's Rewards section.`,
			FallbackDefault: "✈️ Transferring miles with Pneuma is simple:\n\n1. Open the Rewards section in your app\n2. Select 'Transfer Points'\n3. Choose your airline/hotel partner\n4. Enter amount and confirm\n\nTransfers process in 24-48 hours. Your current limits are visible in Account Settings.",
			FallbackKeyed: []KeyedReply{
				{Trigger: "transfer", Reply: "Points transfer is easy! Go to Rewards → Transfer Points in your app. Choose from 15+ airline and hotel partners. Most transfers complete within 24-48 hours."},
				{Trigger: "limit", Reply: "Transfer limits depend on your tier:\n• Standard: 25,000 points/month\n• Premium: 100,000 points/month\n• Elite: Unlimited\n\nCheck Account → Transfer Settings for your current limits."},
				{Trigger: "delta", Reply: "Yes! Delta is one of our top transfer partners. Typical ratio is 1:1 for points to SkyMiles. Transfer through the Rewards section in your Pneuma app."},
			},
			SamplePhrases: []string{
				"How do I transfer miles?",
				"What's my transfer limit?",
				"Can I move points to Delta?",
				"How long do transfers take?",
			},
		},
		{
			Name:     "account_and_setup",
			Keywords: []string{"account", "setup", "sign up", "register", "login", "getting started", "how to", "begin"},
			Directive: `You are Pneuma's onboarding assistant. You help new users get started and existing users with account basics.

Key facts about Pneuma accounts:
- Free to sign up with email or phone number
- Available on iOS and Android
- Account verification required for rewards transfers
- Three tiers: Standard (free), Premium ($9.99/month), Elite ($19.99/month)
- Premium/Elite users get higher transfer limits and exclusive deals
- Account settings allow customization of deal categories and notifications
- Support available at support@pneuma.com for account issues

Keep responses:
- Welcoming and encouraging for new users
- Step-by-step for setup instructions
- Clear about different account tiers
- Helpful for troubleshooting basic issues

For complex account problems, always direct to support@pneuma.com.`,
			FallbackDefault: "Welcome to Pneuma! 🎉 Getting started is easy:\n\n1. Download the Pneuma app (iOS/Android)\n2. Sign up with email or phone\n3. Verify your account\n4. Start browsing deals and earning points!\n\nNeed help? Contact support@pneuma.com",
			FallbackKeyed: []KeyedReply{
				{Trigger: "sign up", Reply: "Signing up is free and takes 2 minutes! Download the Pneuma app, enter your email/phone, verify your account, and you're ready to start saving! 🚀"},
				{Trigger: "pneuma", Reply: "Pneuma helps you get maximum value from your spending through curated deals and rewards. We're your personal savings sidekick with trusted partner discounts! 😊"},
				{Trigger: "login", Reply: "Having trouble logging in? Try resetting your password in the app, or contact our support team at support@pneuma.com - they'll get you sorted quickly!"},
			},
			SamplePhrases: []string{
				"How do I sign up?",
				"What is Pneuma?",
				"How do I get started?",
				"I can't log into my account",
			},
		},
	})
}
