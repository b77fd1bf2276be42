package assessment

// detailedInsights is the current-generation narrative table. Coverage runs
// ahead of the legacy table for the stronger option letters (a–d); weaker
// letters are still served by the legacy table until their rewrites land.
var detailedInsights = map[OptionKey]Insight{
	// --- Q1: Identity & Purpose ---
	{1, "a"}: {
		Title:          "Living On Purpose",
		MainInsight:    "Your daily calendar and your stated purpose tell the same story. That congruence is rare, and it is the engine behind the ease other people notice in you.",
		RootCause:      "You have done the slow work of naming what matters and pruning what does not.",
		GrowthBlocker:  "Alignment this strong can quietly become rigidity when life asks you to renegotiate your purpose.",
		HiddenStrength: "You can say no without guilt, which protects your yes.",
		HiddenDesire:   "To be challenged by a vision bigger than the one you have already achieved.",
		Archetype:      "The Aligned Architect",
		DigitalTwinMessage: "Keep building; just leave one wall unfinished for who you are becoming.",
		MicroActions: MicroActions{
			Hours24: "Write down the one commitment on this week's calendar that least serves your purpose and decide its fate.",
			Days7:   "Schedule a two-hour session to stress-test your purpose statement against the next five years.",
			Days30:  "Mentor one person through the alignment process you used on yourself.",
		},
	},
	{1, "b"}: {
		Title:          "Purpose With Small Drifts",
		MainInsight:    "You know what you are about, and most weeks reflect it, but a handful of recurring obligations belong to an older version of you.",
		RootCause:      "You updated your purpose faster than you updated your commitments.",
		GrowthBlocker:  "Tolerating legacy obligations because ending them feels like a betrayal of past decisions.",
		HiddenStrength: "You notice misalignment early, before it becomes resentment.",
		HiddenDesire:   "Permission to renegotiate promises you made as a different person.",
		Archetype:      "The Intentional Refiner",
		DigitalTwinMessage: "The drift is small now. It is also the cheapest it will ever be to correct.",
		MicroActions: MicroActions{
			Hours24: "List every recurring commitment and mark each one keep, renegotiate, or release.",
			Days7:   "Have the one renegotiation conversation you have been postponing.",
			Days30:  "Rebuild your default week from scratch, starting from purpose rather than from habit.",
		},
	},
	{1, "c"}: {
		Title:          "Purpose In Glimpses",
		MainInsight:    "You feel genuinely on-purpose in flashes, usually in a specific kind of moment, but the connective tissue between those flashes is missing.",
		RootCause:      "You have evidence of what purpose feels like but no system that reproduces the conditions.",
		GrowthBlocker:  "Waiting for clarity to arrive as a feeling instead of manufacturing it as a practice.",
		HiddenStrength: "You already know your signal; many people have never felt it once.",
		HiddenDesire:   "For the glimpses to become the norm rather than the exception.",
		Archetype:      "The Part-Time Visionary",
		DigitalTwinMessage: "You do not need to find your purpose. You need to schedule it.",
		MicroActions: MicroActions{
			Hours24: "Write down the last three moments you felt fully on-purpose and what they had in common.",
			Days7:   "Put one deliberate repeat of those conditions on the calendar, protected like a meeting.",
			Days30:  "Grow that protected block into a weekly ritual and track how often it actually happens.",
		},
	},
	{1, "d"}: {
		Title:          "Borrowed Direction",
		MainInsight:    "Much of what you call your direction was issued by other people: a parent, an industry, a feed. It fits well enough to function and badly enough to ache.",
		RootCause:      "Approval arrived earlier and more reliably than self-knowledge did.",
		GrowthBlocker:  "Confusing being chosen with choosing.",
		HiddenStrength: "You are adaptable enough to succeed even inside goals that were never yours.",
		HiddenDesire:   "To want something openly, in your own name, without a committee's sign-off.",
		Archetype:      "The Approval Navigator",
		DigitalTwinMessage: "The compass works. It is just calibrated to someone else's north.",
		MicroActions: MicroActions{
			Hours24: "Write one paragraph describing a good life, with the rule that nobody you know may appear as an audience.",
			Days7:   "Identify one current goal you would drop tomorrow if nobody would notice, and say so to one person.",
			Days30:  "Replace that goal with one you chose alone, and take its first concrete step.",
		},
	},

	// --- Q2: Energy & Vitality ---
	{2, "a"}: {
		Title:          "Energy As A System",
		MainInsight:    "Your energy is engineered, not accidental: sleep, movement and recovery are treated as infrastructure, and it shows in how evenly you perform across a week.",
		RootCause:      "You learned, probably the hard way, that output follows physiology.",
		GrowthBlocker:  "Over-optimizing the system until the maintenance itself becomes a stressor.",
		HiddenStrength: "You can be counted on at hour nine, which compounds into reputation.",
		HiddenDesire:   "To spend the surplus on something wilder than maintenance.",
		Archetype:      "The Vitality Engineer",
		DigitalTwinMessage: "The machine runs clean. Point it at something worth the fuel.",
		MicroActions: MicroActions{
			Hours24: "Name the single highest-leverage thing your surplus energy should fund this quarter.",
			Days7:   "Drop one optimization ritual for a week and observe whether anything actually degrades.",
			Days30:  "Channel your energy system knowledge into helping one depleted person rebuild theirs.",
		},
	},
	{2, "b"}: {
		Title:          "Strong But Spiky",
		MainInsight:    "You have real horsepower, but it arrives in bursts: strong days that fund heroic output, followed by flat days spent refilling what the burst emptied.",
		RootCause:      "You recover by crashing instead of by design.",
		GrowthBlocker:  "Treating the crash as the price of the burst rather than as a signal of missing recovery structure.",
		HiddenStrength: "Your peaks are genuinely higher than most people's; the raw capacity is not in question.",
		HiddenDesire:   "To trust that steady output could match what the bursts deliver, without the cost.",
		Archetype:      "The Weekend Recoverer",
		DigitalTwinMessage: "Flatten the curve a little. You lose less to the valleys than you think you gain from the peaks.",
		MicroActions: MicroActions{
			Hours24: "Set a hard stop tonight one hour earlier than usual and keep it.",
			Days7:   "Insert one deliberate mid-week recovery block before the crash would normally force one.",
			Days30:  "Track energy daily on a 1–5 scale and cap your best days at 90 percent effort for a month.",
		},
	},
	{2, "c"}: {
		Title:          "Running On Schedule, Not Reserves",
		MainInsight:    "Caffeine, deadlines and momentum are doing work that rest should be doing. The week functions, but only because nothing unexpected has hit it yet.",
		RootCause:      "Recovery is the first thing sacrificed whenever demand rises, and demand always rises.",
		GrowthBlocker:  "A quiet pride in being able to push through, which keeps the real cost invisible.",
		HiddenStrength: "Your discipline under depletion is real; imagine it with a full tank.",
		HiddenDesire:   "One ordinary week that does not feel like a negotiation with your own body.",
		Archetype:      "The Caffeinated Sprinter",
		DigitalTwinMessage: "You are not low on willpower. You are low on sleep.",
		MicroActions: MicroActions{
			Hours24: "Move tonight's bedtime 45 minutes earlier and put the phone in another room.",
			Days7:   "Pick your week's single most demanding day and build a real recovery evening after it.",
			Days30:  "Run a four-week experiment: fixed wake time, caffeine before noon only, and note the trend.",
		},
	},
	{2, "d"}: {
		Title:          "Energy Debt Accruing",
		MainInsight:    "You are borrowing energy from next week to pay for this one, and the interest is showing up as irritability, fog and a shrinking sense of possibility.",
		RootCause:      "Somewhere along the way, exhaustion became your proof of effort.",
		GrowthBlocker:  "Believing the backlog must be cleared before rest is allowed.",
		HiddenStrength: "You have carried this load longer than most people could; endurance is not your gap.",
		HiddenDesire:   "Permission to stop without everything collapsing.",
		Archetype:      "The Borrowed-Hours Worker",
		DigitalTwinMessage: "Rest is not the reward for finishing. It is how you finish.",
		MicroActions: MicroActions{
			Hours24: "Cancel or shrink one non-essential commitment in the next 24 hours, with no replacement.",
			Days7:   "Book one half-day of genuine rest this week and defend it like a flight you cannot miss.",
			Days30:  "Audit a full month of commitments and cut the bottom 20 percent by energy return.",
		},
	},

	// --- Q3: Focus & Attention ---
	{3, "a"}: {
		Title:          "Deep Work Native",
		MainInsight:    "Long, undistracted stretches are your default operating mode, and your output shows the compounding that only sustained attention produces.",
		RootCause:      "You treat attention as a finite asset and have built walls around it accordingly.",
		GrowthBlocker:  "Depth this comfortable can become a hiding place from the shallow-but-necessary work of visibility and connection.",
		HiddenStrength: "You finish things, which quietly puts you in a small minority.",
		HiddenDesire:   "For the world to interrupt you less, and matter more when it does.",
		Archetype:      "The Monotasker",
		DigitalTwinMessage: "Your depth is secure. Spend a little of it above the surface.",
		MicroActions: MicroActions{
			Hours24: "Identify one shallow task you have been avoiding and give it exactly 25 focused minutes.",
			Days7:   "Share one piece of your deep work with someone who would never otherwise see it.",
			Days30:  "Teach your focus setup to one chronically distracted colleague or friend.",
		},
	},
	{3, "b"}: {
		Title:          "Focused With Leaks",
		MainInsight:    "You reach depth regularly, but small leaks — a check here, a ping there — shave the top off of most sessions before they mature.",
		RootCause:      "The environment is mostly tamed; the last few openings are the ones you keep for yourself.",
		GrowthBlocker:  "Believing brief checks are free, when each one resets attention you had already paid for.",
		HiddenStrength: "You recover focus quickly after interruption, which is trainable leverage.",
		HiddenDesire:   "To find the bottom of your concentration and see what lives there.",
		Archetype:      "The Almost-Deep Worker",
		DigitalTwinMessage: "You are one closed door away from your best work.",
		MicroActions: MicroActions{
			Hours24: "Run one 50-minute session today with the phone physically in another room.",
			Days7:   "Identify your single most common leak and make it mechanically impossible during one block a day.",
			Days30:  "Extend your protected daily block to 90 minutes and log completion for the month.",
		},
	},
	{3, "c"}: {
		Title:          "Attention On Demand Only",
		MainInsight:    "You can focus brilliantly, but only when a deadline removes every alternative. Your attention obeys pressure, not intention.",
		RootCause:      "Urgency has been your only reliable trigger, so you never built a second one.",
		GrowthBlocker:  "The adrenaline of the last minute works just well enough to keep you from needing a better system.",
		HiddenStrength: "Under real pressure, you are among the calmest and fastest people in the room.",
		HiddenDesire:   "To produce deadline-quality work without the deadline's cost.",
		Archetype:      "The Deadline Diver",
		DigitalTwinMessage: "You already know how to focus. Now practice choosing when.",
		MicroActions: MicroActions{
			Hours24: "Create one artificial deadline today: a 45-minute timer and a named deliverable.",
			Days7:   "Schedule three morning focus blocks this week before anything urgent can claim them.",
			Days30:  "Deliver one meaningful piece of work a full week early, on purpose, as proof.",
		},
	},
	{3, "d"}: {
		Title:          "Fragmented Attention",
		MainInsight:    "Your attention is sliced thin across tabs, threads and half-started tasks, and the constant switching is taxing you more than the work itself.",
		RootCause:      "Every open loop feels like an obligation, so you keep them all visible to keep them all alive.",
		GrowthBlocker:  "Mistaking responsiveness for productivity.",
		HiddenStrength: "You hold an enormous amount of context at once; narrowed, that breadth becomes insight.",
		HiddenDesire:   "One finished thing that felt calm from start to end.",
		Archetype:      "The Tab Collector",
		DigitalTwinMessage: "Close ten tabs. Keep one promise.",
		MicroActions: MicroActions{
			Hours24: "Pick the smallest unfinished task you have and finish it completely before opening anything new.",
			Days7:   "Adopt a one-screen rule for the first hour of each workday.",
			Days30:  "Keep a daily closed-loops count for a month and make it your only productivity metric.",
		},
	},

	// --- Q4: Confidence & Self-Trust ---
	{4, "a"}: {
		Title:          "Self-Trust As Default",
		MainInsight:    "When the stakes rise, you consult your own judgment first and the room second. That order is the quiet source of your decisiveness.",
		RootCause:      "You have a track record of surviving your own wrong calls, which taught you they are survivable.",
		GrowthBlocker:  "Trust this settled can stop soliciting the disconfirming views that keep judgment sharp.",
		HiddenStrength: "People borrow certainty from you in ambiguous moments, often without telling you.",
		HiddenDesire:   "A peer who pushes back hard enough to be interesting.",
		Archetype:      "The Grounded Decider",
		DigitalTwinMessage: "Keep deciding. Just keep one good skeptic on retainer.",
		MicroActions: MicroActions{
			Hours24: "Ask the sharpest skeptic you know to poke one hole in your current biggest decision.",
			Days7:   "Write down the reasoning behind one pending call before making it, to audit later.",
			Days30:  "Review three past decisions against their written reasoning and extract one pattern.",
		},
	},
	{4, "b"}: {
		Title:          "Confident With A Safety Net",
		MainInsight:    "You trust your judgment and usually act on it, but you keep a validation loop running underneath: one more opinion, one more check, just in case.",
		RootCause:      "A past miss taught you to buy insurance on your own conclusions.",
		GrowthBlocker:  "The checking ritual costs speed and subtly tells you that your first read cannot be trusted.",
		HiddenStrength: "Your calibrated doubt makes your confirmed decisions exceptionally reliable.",
		HiddenDesire:   "To act on a first instinct and watch it hold without the net.",
		Archetype:      "The Verified Decider",
		DigitalTwinMessage: "Your first read is better than your process admits.",
		MicroActions: MicroActions{
			Hours24: "Make one low-stakes decision today entirely on first instinct and log the outcome.",
			Days7:   "For one meaningful decision, cap yourself at a single outside opinion.",
			Days30:  "Keep an instinct journal for a month: first read vs final call vs outcome.",
		},
	},
	{4, "c"}: {
		Title:          "Confidence By Committee",
		MainInsight:    "Your confidence assembles itself from other people's reactions. When the room agrees, you feel sure; when it is silent, so is your conviction.",
		RootCause:      "Somewhere, your inner signal got labeled unreliable, and polling became the workaround.",
		GrowthBlocker:  "Every consultation slightly deepens the belief that you cannot decide alone.",
		HiddenStrength: "You synthesize perspectives unusually well; the committee has made you a genuine listener.",
		HiddenDesire:   "To feel certainty arrive from the inside, even once, before the votes are in.",
		Archetype:      "The Consensus Checker",
		DigitalTwinMessage: "You have a voice in that committee too. Let it speak first.",
		MicroActions: MicroActions{
			Hours24: "Before asking anyone's opinion today, write down your own and date it.",
			Days7:   "Make one visible decision this week without polling anyone, and tell one person you did.",
			Days30:  "Track for a month how often your pre-poll opinion matched the final outcome.",
		},
	},
	{4, "d"}: {
		Title:          "Outsourced Judgment",
		MainInsight:    "High-stakes choices get routed away from you by default — to a partner, a boss, an expert — and each handoff reinforces the story that you are not qualified to decide.",
		RootCause:      "Early consequences for wrong answers taught you that deciding is dangerous and deferring is safe.",
		GrowthBlocker:  "Deferring feels like humility, which makes it very hard to see as avoidance.",
		HiddenStrength: "You execute other people's decisions with rare loyalty; that engine just needs your own destination.",
		HiddenDesire:   "To be the one whose call it was, and to feel the weight and the credit of that.",
		Archetype:      "The Permission Seeker",
		DigitalTwinMessage: "Nobody is coming to authorize your life. That is the good news.",
		MicroActions: MicroActions{
			Hours24: "Make one small decision today that you would normally hand to someone else.",
			Days7:   "Identify the one person you defer to most and make one choice this week without consulting them.",
			Days30:  "Take full ownership of one domain — money, health, a project — for thirty days, decisions included.",
		},
	},

	// --- Q5: Habits & Discipline ---
	{5, "a"}: {
		Title:          "Systems Over Willpower",
		MainInsight:    "Your routines run on structure, not mood. Low-motivation days barely dent your output because the system decides, not the feeling.",
		RootCause:      "You stopped negotiating with yourself daily and moved the decision upstream into design.",
		GrowthBlocker:  "A system this reliable can keep executing goals you have quietly outgrown.",
		HiddenStrength: "Your consistency creates trust — others plan around you like a fixed point.",
		HiddenDesire:   "A goal ambitious enough to make the machine strain.",
		Archetype:      "The Quiet Professional",
		DigitalTwinMessage: "The system works. Make sure it is pointed somewhere worthy of it.",
		MicroActions: MicroActions{
			Hours24: "Audit today's routine and name one habit that serves an outdated goal.",
			Days7:   "Retire that habit and install its replacement with the same trigger and slot.",
			Days30:  "Design one new system for the most ambitious goal you have been deferring.",
		},
	},
	{5, "b"}: {
		Title:          "Strong Habits, Soft Edges",
		MainInsight:    "Your core routines hold about ninety percent of the time. The misses cluster around the same few edges: travel, late nights, certain people.",
		RootCause:      "Your habits were built for your default week and never hardened for the exceptions.",
		GrowthBlocker:  "Treating edge-case failures as character flaws instead of design gaps.",
		HiddenStrength: "You restart quickly after a miss; the habit identity survives the lapse.",
		HiddenDesire:   "For the habits to feel unconditional, somewhere you live rather than something you maintain.",
		Archetype:      "The Ninety-Percent Keeper",
		DigitalTwinMessage: "Do not fix yourself. Fix the three situations that break you.",
		MicroActions: MicroActions{
			Hours24: "Write down the three situations where your habits most often break.",
			Days7:   "Design an if-then minimum version of your keystone habit for each of those situations.",
			Days30:  "Run one month with the minimum-version rule and count saved days versus lost days.",
		},
	},
	{5, "c"}: {
		Title:          "Motivation-Dependent Routines",
		MainInsight:    "When you feel inspired, your discipline is impressive; when you do not, the whole structure takes the day off with you. The result is streaks and resets, not compounding.",
		RootCause:      "Your habits are wired to emotional state rather than to time, place or trigger.",
		GrowthBlocker:  "Each reset teaches you that starting over is normal, which makes quitting cheaper every time.",
		HiddenStrength: "Your inspired stretches prove the capacity; this is an architecture problem, not an ability problem.",
		HiddenDesire:   "To be the kind of person whose Tuesday does not depend on Tuesday's mood.",
		Archetype:      "The Streak Restarter",
		DigitalTwinMessage: "Shrink the habit until your worst day can carry it.",
		MicroActions: MicroActions{
			Hours24: "Pick one keystone habit and define its two-minute floor version.",
			Days7:   "Do the floor version daily this week regardless of mood, and track only showing up.",
			Days30:  "Keep a 30-day chain of the floor version before allowing yourself to scale it up.",
		},
	},
	{5, "d"}: {
		Title:          "Good Intentions, Thin Structure",
		MainInsight:    "Your plans are sincere and your Mondays are ambitious, but there is almost no scaffolding between intention and action, so most plans dissolve by Wednesday.",
		RootCause:      "Planning delivers the feeling of progress, which takes the pressure off building the structure that would deliver actual progress.",
		GrowthBlocker:  "Starting over each week feels like commitment, but it is the opposite: it protects you from ever testing a system long enough to fail informatively.",
		HiddenStrength: "Your optimism is intact after every collapse, and optimism is the one input a habit system cannot manufacture.",
		HiddenDesire:   "To trust yourself with your own promises.",
		Archetype:      "The Monday Planner",
		DigitalTwinMessage: "One kept promise beats five new plans.",
		MicroActions: MicroActions{
			Hours24: "Choose the single smallest promise you can keep tomorrow and write it where you will see it.",
			Days7:   "Keep exactly one daily promise all week; plan nothing else new.",
			Days30:  "Add a second habit only after the first survives 21 consecutive days.",
		},
	},

	// --- Q6: Relationships & Support ---
	{6, "a"}: {
		Title:          "Deep Bench Of Truth-Tellers",
		MainInsight:    "You are surrounded by people who tell you the truth and want your growth, and you actually let them in. That combination is a structural advantage most plans never account for.",
		RootCause:      "You invested in reciprocity early and kept showing up when it was inconvenient.",
		GrowthBlocker:  "A support system this warm can become an echo of encouragement if every truth-teller shares your worldview.",
		HiddenStrength: "You ask for help before the crisis, which is why your crises stay small.",
		HiddenDesire:   "To be needed at the same depth you are supported.",
		Archetype:      "The Connected Builder",
		DigitalTwinMessage: "Your net is strong. Go climb something that requires it.",
		MicroActions: MicroActions{
			Hours24: "Send one specific thank-you to the person whose honesty has shaped you most this year.",
			Days7:   "Offer one person the kind of candid support you usually receive.",
			Days30:  "Add one voice to your circle who sees the world differently than everyone already in it.",
		},
	},
	{6, "b"}: {
		Title:          "Supported But Guarded",
		MainInsight:    "Good people surround you, and they would show up if asked, but you edit what they see. The support is real; your access to it is rationed by your own filter.",
		RootCause:      "Somewhere you learned that being the strong one was the price of belonging.",
		GrowthBlocker:  "Every unshared struggle confirms that nobody knows the real weight, which feels like their failure but is your design.",
		HiddenStrength: "You are a vault for other people's confessions; you already know how safety is built.",
		HiddenDesire:   "To be fully seen once and discover the roof does not fall.",
		Archetype:      "The Selective Sharer",
		DigitalTwinMessage: "They cannot hold what you will not hand them.",
		MicroActions: MicroActions{
			Hours24: "Tell one trusted person one true thing you would normally polish first.",
			Days7:   "Ask for one concrete piece of help this week before it becomes urgent.",
			Days30:  "Establish a recurring honest check-in with one person, both directions.",
		},
	},
	{6, "c"}: {
		Title:          "Wide Network, Thin Support",
		MainInsight:    "You know many people and are genuinely liked, but few of those threads are rated for real weight. In a hard month, the contact list goes quiet.",
		RootCause:      "Breadth was rewarded — professionally, socially — while depth was never scheduled.",
		GrowthBlocker:  "The fullness of the network hides the emptiness of the bench, so the gap only shows in emergencies.",
		HiddenStrength: "You open doors easily; converting three of them into rooms you can actually sit in is well within reach.",
		HiddenDesire:   "One friendship that does not require a reason to call.",
		Archetype:      "The Friendly Stranger",
		DigitalTwinMessage: "You do not need more people. You need more of three people.",
		MicroActions: MicroActions{
			Hours24: "Name the three people you would want in a crisis and message one of them today, no agenda.",
			Days7:   "Schedule unhurried one-on-one time with one of the three.",
			Days30:  "Run a monthly rhythm with all three and let at least one conversation get past the updates.",
		},
	},
	{6, "d"}: {
		Title:          "Carrying It Alone",
		MainInsight:    "You handle nearly everything solo, by habit and by principle. Independence has carried you far, and it is now the heaviest thing you carry.",
		RootCause:      "Help either arrived with strings or did not arrive at all, so you stopped budgeting for it.",
		GrowthBlocker:  "Self-reliance is woven into your identity, so accepting support feels like losing, not gaining.",
		HiddenStrength: "Your endurance is real, and it means even small additions of support yield outsized relief.",
		HiddenDesire:   "To set the load down for an hour in front of someone safe.",
		Archetype:      "The Solo Operator",
		DigitalTwinMessage: "Strong is not the same as alone. You have proven the first; try disproving the second.",
		MicroActions: MicroActions{
			Hours24: "Accept the next offer of help you would reflexively decline, however small.",
			Days7:   "Share one current difficulty with one person, with no solution requested.",
			Days30:  "Join one recurring group — class, team, circle — and attend four times before judging it.",
		},
	},

	// --- Q7: Career & Contribution ---
	{7, "a"}: {
		Title:          "Work As Contribution",
		MainInsight:    "You can draw a straight line from your daily work to impact you care about, and that line is doing more for your motivation than any incentive plan could.",
		RootCause:      "You chose, or carved, a role where your values and your output meet.",
		GrowthBlocker:  "Mission-driven clarity can tip into over-identification, where every workplace setback lands as a personal one.",
		HiddenStrength: "Your sense of purpose is legible to others; people orient around it.",
		HiddenDesire:   "To scale the impact beyond what your own hours can produce.",
		Archetype:      "The Impact Owner",
		DigitalTwinMessage: "The line from your work to the world is clear. Now widen it.",
		MicroActions: MicroActions{
			Hours24: "Write down the one activity where your contribution is highest per hour.",
			Days7:   "Delegate or drop one task that someone else could do at 80 percent of your quality.",
			Days30:  "Start one initiative that multiplies your impact through other people.",
		},
	},
	{7, "b"}: {
		Title:          "Clear Work, Fuzzy Why",
		MainInsight:    "You are good at what you do and you mostly enjoy it, but the thread between the work and any larger why has gone slack. Competence is currently doing meaning's job.",
		RootCause:      "The role evolved, or you did, and the original reason for the work never got re-examined.",
		GrowthBlocker:  "Because nothing is wrong, nothing forces the question — and so the drift compounds quietly.",
		HiddenStrength: "Skill is portable; once the why resharpens, you can redirect with very little rebuilding.",
		HiddenDesire:   "To feel, again, the specific aliveness of work that obviously matters.",
		Archetype:      "The Skilled Drifter",
		DigitalTwinMessage: "You mastered the how. Revisit the why before it revisits you.",
		MicroActions: MicroActions{
			Hours24: "Write one paragraph on why your current work matters — and notice where the writing stalls.",
			Days7:   "Interview one person your work actually affects and hear the impact firsthand.",
			Days30:  "Redesign 10 percent of your role toward the part of the impact that moved you most.",
		},
	},
	{7, "c"}: {
		Title:          "Competent But Unconvinced",
		MainInsight:    "You deliver reliably while privately doubting that the work matters. The gap between your effort and your belief in it is a slow leak on both.",
		RootCause:      "You optimized for security or expectation at a fork where meaning was the other road.",
		GrowthBlocker:  "The salary, the title and the sunk years all argue persuasively for one more year of the same.",
		HiddenStrength: "Doubt this persistent is data; people who genuinely fit do not ask the question this often.",
		HiddenDesire:   "Work you would describe with pride, unprompted, to a stranger.",
		Archetype:      "The Quiet Questioner",
		DigitalTwinMessage: "The question will not stop asking itself. Answer it on purpose.",
		MicroActions: MicroActions{
			Hours24: "List the three moments in any job ever where you felt genuinely useful.",
			Days7:   "Spend two hours exploring one path that matches those moments — a call, a course outline, a draft.",
			Days30:  "Run one concrete experiment in that direction: a side project, shadowing, or a small paid gig.",
		},
	},
	{7, "d"}: {
		Title:          "Running Someone Else's Race",
		MainInsight:    "The ladder you are climbing was leaned against the wall by someone else — a family script, an industry default — and every rung up makes it costlier to admit.",
		RootCause:      "Ambition was installed before identity had formed enough to direct it.",
		GrowthBlocker:  "Success at the wrong thing is the hardest trap, because everyone around you is applauding.",
		HiddenStrength: "The drive itself is genuine and proven; it merely awaits a destination you chose.",
		HiddenDesire:   "To feel ambition and authenticity pull in the same direction for once.",
		Archetype:      "The Ladder Climber",
		DigitalTwinMessage: "You can climb. The only question left is which wall.",
		MicroActions: MicroActions{
			Hours24: "Write down whose approval your current career most reliably earns. Sit with the answer.",
			Days7:   "Describe, in writing, the work you would do if status were invisible to everyone.",
			Days30:  "Take one real step toward that work while keeping the day job untouched.",
		},
	},

	// --- Q8: Money & Abundance ---
	{8, "a"}: {
		Title:          "Money As A Tool",
		MainInsight:    "You relate to money as an instrument — something to deploy, grow and direct — rather than as a referendum on your worth or safety. Decisions get made on numbers, not nerves.",
		RootCause:      "You did the uncomfortable work of separating money facts from money feelings.",
		GrowthBlocker:  "Fluency can drift into over-optimization, where every choice must be financially elegant before it is humanly right.",
		HiddenStrength: "You can talk about money plainly, which makes you dangerous in negotiations and useful to friends.",
		HiddenDesire:   "To use the tool for something that outlives you.",
		Archetype:      "The Abundant Strategist",
		DigitalTwinMessage: "The tool is sharp. Carve something that matters.",
		MicroActions: MicroActions{
			Hours24: "Define the number at which more money stops changing your decisions, and write it down.",
			Days7:   "Allocate one deliberate sum this week to pure generosity or pure joy.",
			Days30:  "Draft a one-page capital plan for the next decade: grow, give, build.",
		},
	},
	{8, "b"}: {
		Title:          "Open With Old Echoes",
		MainInsight:    "Your money thinking is mostly expansive, but inherited scripts still fire at specific triggers — large purchases, asking for rates, checking balances in a bad week.",
		RootCause:      "You upgraded your beliefs faster than your reflexes; the old wiring still owns a few switches.",
		GrowthBlocker:  "Treating the occasional scarcity spike as a relapse rather than as a located, fixable trigger.",
		HiddenStrength: "You can observe your own money reactions without drowning in them — the hardest prerequisite is done.",
		HiddenDesire:   "For the calm you feel about money on good days to become the default on all days.",
		Archetype:      "The Cautious Optimist",
		DigitalTwinMessage: "The echoes are not instructions. You can hear them and still choose.",
		MicroActions: MicroActions{
			Hours24: "Write down the last money decision where an old script, not the numbers, made the call.",
			Days7:   "Rerun one such decision this week on the numbers alone and record how it felt.",
			Days30:  "Keep a trigger log for a month; by day 30 you will know your top two scripts by name.",
		},
	},
	{8, "c"}: {
		Title:          "Scarcity At The Margins",
		MainInsight:    "Day to day you manage money sensibly, but at the margins — pricing your work, investing in yourself, spending on rest — a scarcity reflex consistently picks the smaller life.",
		RootCause:      "An environment where money meant anxiety taught your nervous system to equate spending with danger.",
		GrowthBlocker:  "The reflex disguises itself as prudence, so it never gets challenged, only obeyed.",
		HiddenStrength: "Your discipline with money is real; redirected, it funds bold moves as easily as it funds caution.",
		HiddenDesire:   "To buy back your own time without a week of justification.",
		Archetype:      "The Safety-First Saver",
		DigitalTwinMessage: "Prudence that always says no has stopped being prudence.",
		MicroActions: MicroActions{
			Hours24: "Name one growth expense you vetoed this year purely on reflex.",
			Days7:   "Make one modest investment in yourself this week and note the actual, not imagined, consequence.",
			Days30:  "Set a monthly growth budget — a fixed sum that must be spent on your own expansion.",
		},
	},
	{8, "d"}: {
		Title:          "Money As Threat",
		MainInsight:    "Money mostly shows up in your body before it shows up in your thinking: avoidance of balances, dread around conversations, numbers left unopened. The topic itself has become the enemy.",
		RootCause:      "Money pain earlier in life was vivid enough that avoidance became self-protection.",
		GrowthBlocker:  "Every avoided look confirms that looking is unbearable, and the uncertainty itself feeds the dread.",
		HiddenStrength: "You have survived every financial reality so far without even facing it fully; facing it can only add power.",
		HiddenDesire:   "To open the account, see the number, and feel nothing but information.",
		Archetype:      "The Avoidant Accountant",
		DigitalTwinMessage: "The number is smaller than the dread. It almost always is.",
		MicroActions: MicroActions{
			Hours24: "Look at every balance once today, write the totals on paper, and do nothing else.",
			Days7:   "Have one honest money conversation with someone safe this week.",
			Days30:  "Install a weekly 20-minute money check-in; same day, same time, music on.",
		},
	},

	// --- Q9: Resilience & Recovery ---
	{9, "a"}: {
		Title:          "Fast Recovery Loop",
		MainInsight:    "Setbacks move through you quickly: you feel them, extract the lesson, and return to baseline while others are still replaying the event. Your recovery loop is a trained system.",
		RootCause:      "Repetition plus reflection — you have processed enough failures to have a protocol.",
		GrowthBlocker:  "Recovery this fast can skip grief when grief is the correct response, processing losses as mere data.",
		HiddenStrength: "Your calm after impact steadies entire rooms.",
		HiddenDesire:   "A challenge large enough that resilience becomes strategy, not just maintenance.",
		Archetype:      "The Rapid Rebounder",
		DigitalTwinMessage: "You bounce well. Make sure you are not bouncing past anything.",
		MicroActions: MicroActions{
			Hours24: "Revisit your last setback and ask what you felt but did not let yourself feel.",
			Days7:   "Talk one struggling person through your recovery protocol, step by step.",
			Days30:  "Take on one stretch challenge where failure is genuinely possible.",
		},
	},
	{9, "b"}: {
		Title:          "Recovers With Scar Tissue",
		MainInsight:    "You come back from setbacks reliably, but each one leaves a small deposit of caution. You are resilient and, measurably, a little more guarded every year.",
		RootCause:      "Recovery was learned as armor rather than as repair.",
		GrowthBlocker:  "The accumulating caution reads as wisdom, but some of it is just old pain making current decisions.",
		HiddenStrength: "Your risk assessments are grounded in real experience, and they are right more often than not.",
		HiddenDesire:   "To take one risk at the size you would have dared before the scars.",
		Archetype:      "The Careful Comeback",
		DigitalTwinMessage: "Healed means flexible, not hard. Check which one you are becoming.",
		MicroActions: MicroActions{
			Hours24: "Name one opportunity you declined this year primarily because of an old wound.",
			Days7:   "Take one small risk this week in exactly that category.",
			Days30:  "Write the story of your biggest setback ending with what it built, and share it once.",
		},
	},
	{9, "c"}: {
		Title:          "Slow To Refill",
		MainInsight:    "You do recover, but the tank refills slowly, and a second blow landing before the first is processed can knock out a season. Your recovery works; it just has no margin.",
		RootCause:      "You process deeply and alone, which is thorough and slow.",
		GrowthBlocker:  "Withdrawing to recover cuts you off from the accelerants — people, movement, perspective — that would shorten the loop.",
		HiddenStrength: "What you process, you process completely; your recovered ground stays recovered.",
		HiddenDesire:   "To trust that recovery can be shared without being shortchanged.",
		Archetype:      "The Long Processor",
		DigitalTwinMessage: "Depth is your gift. Add speed by adding people.",
		MicroActions: MicroActions{
			Hours24: "Tell one person about whatever you are currently quietly processing.",
			Days7:   "Add one physical recovery input this week — long walk, hard workout, full day off.",
			Days30:  "Write your recovery protocol down while well, so the depleted version of you can follow it.",
		},
	},
	{9, "d"}: {
		Title:          "Setbacks That Linger",
		MainInsight:    "Old setbacks still occupy live memory: replayed conversations, what-ifs, identity-level conclusions drawn from events long over. The past is billing you monthly.",
		RootCause:      "Nobody taught you closure, so your mind keeps the cases open in hope of a retrial.",
		GrowthBlocker:  "Replaying feels like diligence — as if enough analysis will finally change the outcome.",
		HiddenStrength: "Your memory for detail and meaning is immense; pointed forward, it is vision.",
		HiddenDesire:   "To think of the hardest thing that happened to you and feel only weather, not storm.",
		Archetype:      "The Replayer",
		DigitalTwinMessage: "The verdict is in and you survived. Close the file.",
		MicroActions: MicroActions{
			Hours24: "Write the lingering story down start to finish, once, and end the page with the word 'closed'.",
			Days7:   "Each time the replay starts this week, name it out loud and move your body for two minutes.",
			Days30:  "If the file will not close on its own, book one session with a professional who closes files for a living.",
		},
	},

	// --- Q10: Vision & Future Self ---
	{10, "a"}: {
		Title:          "Vivid Future, Working Backwards",
		MainInsight:    "Your future self is concrete enough to consult: you can see the life, feel its texture, and derive this quarter's moves from it. You navigate by destination, not by current.",
		RootCause:      "You treat imagination as planning infrastructure and have practiced it like a skill.",
		GrowthBlocker:  "A vision this crisp can become a cage if the person you are becoming turns out to want something else.",
		HiddenStrength: "Your long horizon makes you immune to most short-term noise.",
		HiddenDesire:   "Company on the road — others who can see their ten-year self too.",
		Archetype:      "The Time Traveler",
		DigitalTwinMessage: "You can see the destination. Stay loose enough to let it surprise you.",
		MicroActions: MicroActions{
			Hours24: "Write one page from your future self dated five years out, and extract this month's single instruction.",
			Days7:   "Kill or update one current goal that no longer appears anywhere in that picture.",
			Days30:  "Build a quarterly vision review into your calendar, recurring, non-negotiable.",
		},
	},
	{10, "b"}: {
		Title:          "Clear Picture, Loose Plan",
		MainInsight:    "You can describe your desired future in satisfying detail, but the bridge from here to there is mostly vibes: no dated milestones, no this-week implications.",
		RootCause:      "Envisioning is intrinsically rewarding for you; scheduling is not, so only one of them happens.",
		GrowthBlocker:  "The vividness of the dream provides enough emotional payoff to defuse the urgency of building it.",
		HiddenStrength: "A genuinely clear destination is the hard half; reverse-engineering is mechanical by comparison.",
		HiddenDesire:   "To catch the future actually arriving, milestone by milestone, instead of perpetually approaching.",
		Archetype:      "The Inspired Sketcher",
		DigitalTwinMessage: "The picture is painted. Now hang it on a date.",
		MicroActions: MicroActions{
			Hours24: "Pick one element of your vision and give it a deadline inside twelve months.",
			Days7:   "Break that deadline into four milestones and put the first on this month's calendar.",
			Days30:  "Complete milestone one and schedule a review of the remaining three.",
		},
	},
	{10, "c"}: {
		Title:          "Future In Soft Focus",
		MainInsight:    "Your future exists as a warm blur — 'better', 'freer', 'more settled' — pleasant to visit and impossible to build toward, because nothing in it has edges.",
		RootCause:      "Specificity means committing, and committing means closing doors you prefer to keep ajar.",
		GrowthBlocker:  "Keeping every option open is itself a choice, and it reliably chooses drift.",
		HiddenStrength: "Your openness is real adaptability; once aimed, flexible people move fastest.",
		HiddenDesire:   "To want one specific thing badly enough to say it out loud.",
		Archetype:      "The Someday Dreamer",
		DigitalTwinMessage: "Someday is not on the calendar. Pick a day that is.",
		MicroActions: MicroActions{
			Hours24: "Answer in writing: where do you live, what do you do, and who is around you, three years from now.",
			Days7:   "Share that answer with one person and let them ask questions until it has edges.",
			Days30:  "Choose the one edge that excites you most and take its first irreversible step.",
		},
	},
	{10, "d"}: {
		Title:          "Avoiding The Horizon",
		MainInsight:    "Thinking about the future produces anxiety rather than direction, so you have learned not to look. Life is managed in two-week increments while the horizon manages itself.",
		RootCause:      "Past plans collapsed hard enough that hoping concretely began to feel like setting up your own disappointment.",
		GrowthBlocker:  "Short-horizon living feels safe, but it quietly hands the steering to circumstance and other people's plans.",
		HiddenStrength: "You are genuinely good in the present — responsive, practical, hard to rattle — which is the rarer half of the skill.",
		HiddenDesire:   "To look five years ahead and feel curiosity instead of dread.",
		Archetype:      "The Present-Tense Survivor",
		DigitalTwinMessage: "You survived the futures that fell through. You are allowed to sketch another.",
		MicroActions: MicroActions{
			Hours24: "Set a five-minute timer and describe a future that is only ten percent better than today.",
			Days7:   "Extend the sketch to one year out, keeping it small enough to feel safe.",
			Days30:  "Make one reversible commitment to that one-year sketch and notice that the dread was survivable.",
		},
	},
}
