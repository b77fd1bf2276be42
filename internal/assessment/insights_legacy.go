package assessment

// legacyEntry adapts a first-generation record to the full payload. The old
// format carried only a title, a single insight, a recommendation and an
// archetype; the extended narrative fields stay empty.
func legacyEntry(title, insight, recommendation, archetype string, ma MicroActions) Insight {
	return Insight{
		Title:          title,
		MainInsight:    insight,
		Recommendation: recommendation,
		Archetype:      archetype,
		MicroActions:   ma,
	}
}

// legacyInsights is the first-generation table. It still serves the lower
// option letters (e–j) that the detailed rewrite has not reached. The Q1 a–d
// entries remain for history but are shadowed by the detailed table.
var legacyInsights = map[OptionKey]Insight{
	// Q1 a–d: superseded by the detailed table.
	{1, "a"}: legacyEntry("Strong Alignment",
		"Your life and your purpose largely agree.",
		"Keep auditing commitments quarterly so the alignment stays earned.",
		"The Aligned One",
		MicroActions{"Review today's schedule against your purpose.", "Drop one misaligned commitment.", "Run a quarterly alignment review."}),
	{1, "b"}: legacyEntry("Mostly Aligned",
		"Most days reflect your purpose, with some drift at the edges.",
		"Tighten the few commitments that belong to an older you.",
		"The Refiner",
		MicroActions{"List your recurring commitments.", "Renegotiate one of them.", "Rebuild your default week."}),
	{1, "c"}: legacyEntry("Intermittent Purpose",
		"Purpose shows up in moments but not as a throughline.",
		"Engineer the conditions of your best moments instead of waiting for them.",
		"The Glimpser",
		MicroActions{"Note your last on-purpose moment.", "Schedule a deliberate repeat.", "Make it a weekly ritual."}),
	{1, "d"}: legacyEntry("External Compass",
		"Your direction is set more by others' expectations than your own.",
		"Start naming wants that carry no audience.",
		"The Pleaser",
		MicroActions{"Describe a good life with no audience in it.", "Name one goal that is not yours.", "Replace it with one that is."}),

	// Q1 e–j
	{1, "e"}: legacyEntry("Purpose Unexamined",
		"You rarely ask the purpose question; routine answers it for you.",
		"Open the question gently before circumstances open it for you.",
		"The Autopilot",
		MicroActions{"Ask yourself once today: what is this week for?", "Journal ten minutes on what matters most.", "Draft a first purpose sentence, however rough."}),
	{1, "f"}: legacyEntry("Purpose Fog",
		"When asked what your life is about, nothing specific surfaces.",
		"Collect evidence from your past instead of demanding an answer from your future.",
		"The Fog Walker",
		MicroActions{"List three activities that have ever absorbed you.", "Revisit one of them this week.", "Look for the pattern across all three."}),
	{1, "g"}: legacyEntry("Disconnected Days",
		"Days feel interchangeable; none of them seem to point anywhere.",
		"Introduce one deliberately chosen act per day to break the sameness.",
		"The Drifter",
		MicroActions{"Do one thing today because you chose it.", "Add one chosen act to each day this week.", "Review which chosen acts felt alive."}),
	{1, "h"}: legacyEntry("Quiet Resignation",
		"You suspect purpose is for other people and have mostly stopped looking.",
		"Borrow belief: spend time near people who are visibly on-purpose.",
		"The Resigned",
		MicroActions{"Contact one person whose direction you admire.", "Ask them how they found it.", "Try their first step for yourself."}),
	{1, "i"}: legacyEntry("Purpose Pain",
		"The purpose question hurts, so it stays unasked.",
		"Lower the bar from life purpose to this month's purpose.",
		"The Avoider",
		MicroActions{"Name a purpose for just this week.", "Complete it and name another.", "Stack four weekly purposes into a month."}),
	{1, "j"}: legacyEntry("Numb To Direction",
		"Direction feels irrelevant; getting through the day takes everything.",
		"Stabilize first: purpose grows from ground, not from pressure.",
		"The Survivor",
		MicroActions{"Do one small kind thing for yourself today.", "Establish one daily anchor routine.", "With ground under you, revisit one small want."}),

	// Q2 e–j
	{2, "e"}: legacyEntry("Unreliable Fuel",
		"Your energy is unpredictable enough that planning around it feels pointless.",
		"Track before you fix; patterns beat guesses.",
		"The Flickering Lamp",
		MicroActions{"Rate your energy three times today.", "Keep the log all week.", "Adjust one routine based on the clearest pattern."}),
	{2, "f"}: legacyEntry("Afternoon Collapse",
		"Mornings function; afternoons are a write-off more days than not.",
		"Protect the morning, redesign the afternoon.",
		"The Half-Day Worker",
		MicroActions{"Move one key task into tomorrow morning.", "Add a real break before your usual crash time.", "Restructure your standard day around your actual curve."}),
	{2, "g"}: legacyEntry("Chronic Tiredness",
		"Tired is your baseline; rested days are the anomaly you remember.",
		"Treat sleep as the first project, not the leftover.",
		"The Weary Carrier",
		MicroActions{"Go to bed 30 minutes earlier tonight.", "Hold a fixed wake time for a week.", "Review stimulants and screens after 8pm for a month."}),
	{2, "h"}: legacyEntry("Running On Fumes",
		"You are functioning on reserves that ran out some time ago.",
		"Subtract before you optimize; nothing works on empty.",
		"The Fume Runner",
		MicroActions{"Cancel one drain this week.", "Take one full evening completely off.", "Cut your commitment list by a fifth."}),
	{2, "i"}: legacyEntry("Body Sending Bills",
		"Headaches, tension and fog have become regular correspondence from your body.",
		"Take the signals literally; they are the early invoices.",
		"The Ignored Messenger",
		MicroActions{"Book the health check you have postponed.", "Add ten minutes of daily movement.", "Keep a symptom and sleep log for the month."}),
	{2, "j"}: legacyEntry("Depleted",
		"There is almost nothing left in the tank and it has been that way a while.",
		"This is recovery territory: seek real support, reduce hard, rebuild slow.",
		"The Empty Tank",
		MicroActions{"Tell one person honestly how depleted you are.", "Offload or pause your heaviest obligation.", "Build a 30-day recovery month with professional help if possible."}),

	// Q3 e–j
	{3, "e"}: legacyEntry("Shallow Default",
		"Focus happens occasionally, by accident, when conditions align on their own.",
		"Create the conditions once a day on purpose.",
		"The Accidental Focuser",
		MicroActions{"Silence notifications for one hour today.", "Repeat the hour daily this week.", "Grow it to a named daily focus block."}),
	{3, "f"}: legacyEntry("Interrupt-Driven",
		"Your day is structured by whatever pings loudest.",
		"Win back the first hour; it sets the day's ownership.",
		"The Responder",
		MicroActions{"No inbox for the first 30 minutes tomorrow.", "Extend to the first hour all week.", "Batch messages into two fixed windows a day."}),
	{3, "g"}: legacyEntry("Restless Mind",
		"Even in quiet, attention skitters; stillness itself feels uncomfortable.",
		"Train the muscle small: minutes, not hours.",
		"The Skitterer",
		MicroActions{"Sit with one task for ten unbroken minutes today.", "Add two minutes each day this week.", "Reach twenty daily minutes and hold for a month."}),
	{3, "h"}: legacyEntry("Attention Underwater",
		"Most tasks take several starts, and reading a page twice is normal.",
		"Reduce inputs before blaming the processor.",
		"The Overloaded",
		MicroActions{"Unfollow or mute ten sources today.", "One-screen rule for mornings this week.", "A month of single-tasking the first task of each day."}),
	{3, "i"}: legacyEntry("Scattered Thin",
		"Focus is scarce enough that important things slip weekly.",
		"Externalize everything; your head is not the place for storage.",
		"The Juggler",
		MicroActions{"Write every open loop into one list today.", "Pick three per day from the list, nothing else.", "Run the one-list system for a month."}),
	{3, "j"}: legacyEntry("Cannot Land",
		"Attention will not settle anywhere long enough to matter, and it is distressing.",
		"Be kind and get curious: sleep, stress and screens first, then help if needed.",
		"The Hummingbird",
		MicroActions{"Take one screen-free walk today.", "Fix a sleep window for the week.", "If nothing shifts in 30 days, talk to a professional about it."}),

	// Q4 e–j
	{4, "e"}: legacyEntry("Hesitant Caller",
		"You make the call eventually, but the run-up costs more than the decision.",
		"Shorten the runway: decide by deadline, not by certainty.",
		"The Deliberator",
		MicroActions{"Give today's pending choice a 5pm deadline.", "Time-box every decision this week.", "Review which timed decisions you regretted. Likely few."}),
	{4, "f"}: legacyEntry("Second-Guesser",
		"Decisions get made and then re-litigated nightly.",
		"Write the reason down at decision time; reread instead of replaying.",
		"The Re-Litigator",
		MicroActions{"Log today's decisions with one-line reasons.", "Reread the log when doubt hits this week.", "Keep a month of logs and count the reversals worth making."}),
	{4, "g"}: legacyEntry("Borrowed Certainty",
		"You feel sure only when someone sure is nearby.",
		"Practice deciding alone in arenas where mistakes are cheap.",
		"The Echo",
		MicroActions{"Choose lunch, route and one purchase solo today.", "Make one real decision this week before asking anyone.", "Raise the stakes slowly over a month."}),
	{4, "h"}: legacyEntry("Shrinking Voice",
		"Your opinion leaves your mouth pre-softened, if it leaves at all.",
		"Say the unsoftened version once a day somewhere safe.",
		"The Qualifier",
		MicroActions{"State one opinion today without a disclaimer.", "Do it once daily this week.", "Then once per meeting for a month."}),
	{4, "i"}: legacyEntry("Self-Doubt Loop",
		"The default assumption is that your read is wrong.",
		"Collect evidence; doubt shrinks under data.",
		"The Doubter",
		MicroActions{"Write down three past calls you got right.", "Add one more each day this week.", "Review thirty days of evidence and re-ask who is usually right."}),
	{4, "j"}: legacyEntry("Voice Gone Quiet",
		"You no longer trust yourself with even small calls, and it is exhausting.",
		"Rebuild at the smallest scale and consider a guide for the journey.",
		"The Silenced",
		MicroActions{"Make one tiny choice today and honor it.", "One kept self-promise daily this week.", "If the fog persists after a month, bring in a coach or counselor."}),

	// Q5 e–j
	{5, "e"}: legacyEntry("Patchy Practice",
		"Habits exist but skip days freely; nothing compounds.",
		"Pick one habit and make it daily at a trivial size.",
		"The Sampler",
		MicroActions{"Choose your one habit and its two-minute version.", "Daily all week, tracked.", "Thirty unbroken days before adding anything."}),
	{5, "f"}: legacyEntry("Structure Allergy",
		"Routine feels like a cage, so you avoid building any.",
		"Reframe: structure is what frees attention for the interesting parts.",
		"The Improviser",
		MicroActions{"Fix just your wake time today.", "Add one anchor habit at the same hour all week.", "Keep exactly two anchors for a month. Nothing more."}),
	{5, "g"}: legacyEntry("Evening Collapse",
		"Discipline lasts until evening; nights undo the days.",
		"Design the evening like you design the morning.",
		"The Day Builder",
		MicroActions{"Write tonight's last two hours down in advance.", "Run a fixed shutdown ritual this week.", "Protect a screen-free final hour for a month."}),
	{5, "h"}: legacyEntry("Start-Stop Cycle",
		"Every few weeks a new regime begins, peaks, and quietly dissolves.",
		"Lower the ambition, raise the floor.",
		"The Restarter",
		MicroActions{"Halve your current plan today.", "Keep the halved plan every day this week.", "Only after 30 clean days may the plan grow."}),
	{5, "i"}: legacyEntry("Intentions Only",
		"The gap between what you intend and what you do has become the norm.",
		"One promise, absurdly small, kept daily. That is the whole program.",
		"The Intender",
		MicroActions{"Pick a one-minute promise for tomorrow.", "Keep it seven days straight.", "Let a month of kept minutes rebuild the trust."}),
	{5, "j"}: legacyEntry("No Ground",
		"There is currently no stable routine at all, and chaos is costing you.",
		"Anchor one fixed point per day; everything rebuilds from one.",
		"The Unanchored",
		MicroActions{"Set one fixed daily anchor, for example breakfast at the table.", "Hold the single anchor all week.", "Add a second anchor only in week four."}),

	// Q6 e–j
	{6, "e"}: legacyEntry("Fair-Weather Circle",
		"Your people are good for celebrations, untested for storms.",
		"Deepen one bond deliberately before you need it deep.",
		"The Socialite",
		MicroActions{"Invite one friend to a real one-on-one.", "Go one layer more honest than usual there.", "Repeat monthly with the same person."}),
	{6, "f"}: legacyEntry("Drifting Apart",
		"Once-close relationships are thinning from simple neglect.",
		"Re-invest; old bonds reopen faster than new ones form.",
		"The Lapsed Friend",
		MicroActions{"Message one drifted friend today.", "Get one reunion on the calendar.", "Rebuild a monthly rhythm with two people."}),
	{6, "g"}: legacyEntry("Surface Only",
		"Plenty of contact, none of it below the waterline.",
		"Ask one real question and answer one honestly.",
		"The Acquaintance",
		MicroActions{"Ask someone today how they actually are, and wait.", "Share one true thing about your own week.", "Find or form one setting where depth is the norm."}),
	{6, "h"}: legacyEntry("Mostly Isolated",
		"Days can pass without a meaningful exchange.",
		"Schedule connection like medicine: small doses, regular intervals.",
		"The Hermit",
		MicroActions{"Have one real conversation today, voice not text.", "Three such conversations this week.", "Join one recurring human thing this month."}),
	{6, "i"}: legacyEntry("Trust Deficit",
		"Letting people in has burned you before, so the doors stay shut.",
		"Test trust in grams, not kilograms, with the safest person available.",
		"The Guarded",
		MicroActions{"Share one small true thing with one safe person.", "If held well, share one slightly larger thing.", "Expand at your own pace for a month, one person only."}),
	{6, "j"}: legacyEntry("Alone With It",
		"Whatever happens, good or bad, there is no one to tell.",
		"This weight is not meant to be solo; structured support counts as a first step.",
		"The Islander",
		MicroActions{"Say one honest sentence to any other human today.", "Attend one group or community event this week.", "Consider a counselor or support group this month. It counts."}),

	// Q7 e–j
	{7, "e"}: legacyEntry("Paycheck Mode",
		"Work is a transaction; meaning happens elsewhere, if at all.",
		"Either mine the current role for meaning or mine your evenings for direction.",
		"The Transactor",
		MicroActions{"Name one part of the job you do not hate.", "Do more of that part this week where possible.", "Spend four evening hours this month exploring work you would choose."}),
	{7, "f"}: legacyEntry("Sunday Dread",
		"The weekend ends with a knot in your stomach, every week.",
		"Dread is data: locate exactly which Monday element produces it.",
		"The Dreader",
		MicroActions{"Write down tonight precisely what you dread about tomorrow.", "Change or confront one of those elements this week.", "If the list does not shrink in a month, start the exit plan."}),
	{7, "g"}: legacyEntry("Talents On Shelf",
		"Your best abilities are not used by your current role and are going quiet.",
		"Give the shelf talents a weekly outlet before they atrophy.",
		"The Understudy",
		MicroActions{"Name your top unused talent.", "Use it once this week anywhere at all.", "Build it a regular home: side project, volunteering, or a role pitch."}),
	{7, "h"}: legacyEntry("Career Fog",
		"You cannot currently say what you want from work, only what you do not.",
		"Run small experiments; clarity comes from contact, not contemplation.",
		"The Explorer Ungeared",
		MicroActions{"List three jobs you are curious about, however impractical.", "Talk to one person who does one of them.", "Try the smallest real taste of one this month."}),
	{7, "i"}: legacyEntry("Trapped Feeling",
		"The role feels like a trap with the door labeled mortgage, visa, or duty.",
		"Audit the trap; constraints are usually softer and fewer than dread reports.",
		"The Caged",
		MicroActions{"Write the actual constraints down with numbers.", "Identify the single binding one.", "Build a 12-month loosening plan for that one constraint."}),
	{7, "j"}: legacyEntry("Burned Out On Work",
		"Work has consumed the energy it was meant to fund your life with.",
		"Recovery precedes reinvention; do not choose the next mountain while exhausted.",
		"The Burned",
		MicroActions{"Take one genuinely free day this week, fully off.", "Say no to one new obligation at work.", "Use this month for rest first; decide nothing big until it ends."}),

	// Q8 e–j
	{8, "e"}: legacyEntry("Money Autopilot",
		"Money happens to you; no plan, no review, just flow-through.",
		"Awareness before strategy: simply watching changes behavior.",
		"The Bystander",
		MicroActions{"Check every balance once today.", "Note spending daily for a week, no judgment.", "Hold one monthly money hour from now on."}),
	{8, "f"}: legacyEntry("Feast And Famine",
		"Spending swings between discipline and blowouts, like a crash diet.",
		"Budget joy on purpose so it stops budgeting itself.",
		"The Swinger",
		MicroActions{"Allocate a guilt-free fun amount for this week.", "Spend it fully and track nothing else.", "Run the planned-joy system for a month."}),
	{8, "g"}: legacyEntry("Worth Entangled",
		"Your bank balance and your self-worth move together, and both swing.",
		"Separate the ledgers: net worth is a number, self-worth is not.",
		"The Entangled",
		MicroActions{"Write three things you value about yourself that money cannot touch.", "Reread them before any money check this week.", "Notice for a month which ledger each bad feeling belongs to."}),
	{8, "h"}: legacyEntry("Undercharger",
		"You price your work, and maybe yourself, below market out of fear.",
		"Raise one price and survive the raising; evidence beats affirmation.",
		"The Discounter",
		MicroActions{"Find the real market rate for what you do.", "Quote it once this week without apologizing.", "Adjust all remaining prices within the month."}),
	{8, "i"}: legacyEntry("Debt Shadow",
		"Money mostly means obligations, and the shadow colors everything.",
		"Face the full number once; shadows shrink under measurement.",
		"The Shadowed",
		MicroActions{"Write every debt in one list today.", "Pick the smallest and pay anything at all toward it.", "Set up one automatic payment system this month."}),
	{8, "j"}: legacyEntry("Money Panic",
		"Financial thoughts reliably trigger panic, so the whole domain is sealed off.",
		"Pair every money task with calm: small doses, safe company, real help.",
		"The Sealed Vault",
		MicroActions{"Open one account page for sixty seconds today, then close it.", "Do one money task beside a trusted person this week.", "Book a session with a financial counselor this month."}),

	// Q9 e–j
	{9, "e"}: legacyEntry("Bruised Optimism",
		"You get up again, but each round takes a little more convincing.",
		"Refill deliberately between rounds instead of just waiting for the bell.",
		"The Tired Optimist",
		MicroActions{"Name what the last setback actually cost you.", "Give yourself one true recovery evening this week.", "Build a between-rounds ritual you run after every hit."}),
	{9, "f"}: legacyEntry("Avoidant Bounce",
		"You move past setbacks by not looking at them, and they wait for you.",
		"Schedule the look; ten contained minutes beats a year of leaking.",
		"The Fast-Forwarder",
		MicroActions{"Spend ten timed minutes writing about the last thing you skipped past.", "Repeat twice this week.", "Notice after a month whether the background hum is quieter."}),
	{9, "g"}: legacyEntry("Thin Skin Season",
		"Small knocks are landing like big ones lately; your buffer is gone.",
		"Rebuild the buffer: sleep, movement, one confidant.",
		"The Unbuffered",
		MicroActions{"Get a full night's sleep tonight, whatever it takes.", "Move your body daily this week.", "Tell one person you are in a thin-skin season."}),
	{9, "h"}: legacyEntry("Catastrophe Lens",
		"Every setback instantly previews the worst case, in detail.",
		"Interrogate the preview: likely case and best case get equal screen time.",
		"The Catastrophizer",
		MicroActions{"For today's worry, write worst, likely and best case.", "Do this for each spiral all week.", "Count after a month how often the worst case came true."}),
	{9, "i"}: legacyEntry("Stuck In The Hit",
		"A particular setback has you pinned, months or years later.",
		"Stuck is a location, not an identity; professional navigation helps.",
		"The Pinned",
		MicroActions{"Write one page about what the event took from you.", "Share any part of it with one safe person.", "Take one step this month, reading, group or counselor, toward processing it properly."}),
	{9, "j"}: legacyEntry("Brittle",
		"You feel one setback away from breaking, and it is frightening.",
		"This is a load problem, not a strength problem: reduce load, add support, now.",
		"The Overloaded Beam",
		MicroActions{"Drop or delegate one obligation today.", "Tell one trusted person exactly how close to the edge you are.", "Get professional support in place this month. This is what it is for."}),

	// Q10 e–j
	{10, "e"}: legacyEntry("Borrowed Futures",
		"Your future images are screenshots of other people's lives.",
		"Return to sender; design one frame that is actually yours.",
		"The Collector",
		MicroActions{"Unfollow three accounts whose lives you keep borrowing.", "Write one future scene with no borrowed elements.", "Test one element of that scene in real life this month."}),
	{10, "f"}: legacyEntry("Rearview Living",
		"The most vivid pictures are behind you; ahead looks pale by comparison.",
		"Honor the past and give the future one fair audition.",
		"The Rememberer",
		MicroActions{"Write what made the best old days good, as ingredients not scenes.", "Plan one upcoming thing using those ingredients.", "Create one genuinely new good memory this month."}),
	{10, "g"}: legacyEntry("Five-Year Blank",
		"Asked where you are headed, the honest answer is a shrug.",
		"Start from appetite, not destiny: what do you want more of, less of?",
		"The Shrugger",
		MicroActions{"Make a more-of and less-of list today.", "Pick the top item of each and act on both this week.", "Let a month of more-and-less reveal the direction."}),
	{10, "h"}: legacyEntry("Future As Burden",
		"The future reads as a list of obligations: aging, costs, duties.",
		"Add one wanted thing to the horizon so it is not all invoices.",
		"The Obligated",
		MicroActions{"Put one purely wanted event on next month's calendar.", "Plan its details this week with real care.", "Keep one wanted thing on the horizon at all times."}),
	{10, "i"}: legacyEntry("Hope Fatigue",
		"You have stopped imagining better because imagining kept costing.",
		"Hope can be rebuilt at low stakes; start where disappointment is survivable.",
		"The Hope-Tired",
		MicroActions{"Plan one small pleasant thing for tomorrow and do it.", "Plan and keep three more this week.", "Scale from days to months only as trust returns."}),
	{10, "j"}: legacyEntry("Horizon Dark",
		"Looking ahead produces only dread or blankness, and it is heavy.",
		"Darkness this deep is a signal to bring in support, not to try harder alone.",
		"The Nightwatcher",
		MicroActions{"Tell one person today that the future feels dark.", "Do one grounding activity daily this week.", "Talk to a professional this month; heaviness like this is treatable."}),
}
