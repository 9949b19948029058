package words

// dictionary is the accepted-word set for clue and pre-round words. Every
// entry is exactly five uppercase letters.
var dictionary = []string{
	"ABOUT", "ABOVE", "ABUSE", "ACTED", "ACTOR", "ACUTE", "ADMIN", "ADMIT",
	"ADOPT", "ADULT", "AFTER", "AGAIN", "AGENT", "AGREE", "AHEAD", "ALARM",
	"ALBUM", "ALERT", "ALIEN", "ALIGN", "ALIKE", "ALIVE", "ALLOW", "ALONE",
	"ALONG", "ALTER", "AMONG", "ANGER", "ANGLE", "ANGRY", "ANKLE", "APART",
	"APPLE", "APPLY", "ARENA", "ARGUE", "ARISE", "ARMED", "ARMOR", "ARRAY",
	"ARROW", "ASIDE", "ASSET", "AVOID", "AWAKE", "AWARD", "AWARE", "BADLY",
	"BAKER", "BANKS", "BASES", "BASIC", "BATCH", "BEACH", "BEANS", "BEARS",
	"BEAST", "BEGAN", "BEGIN", "BEING", "BELLY", "BELOW", "BENCH", "BIKES",
	"BILLS", "BILLY", "BIRDS", "BIRTH", "BLACK", "BLADE", "BLAME", "BLANK",
	"BLAST", "BLEED", "BLESS", "BLIND", "BLOCK", "BLOOD", "BLOOM", "BLOWN",
	"BLUES", "BLUNT", "BLUSH", "BOARD", "BOAST", "BOATS", "BOBBY", "BONES",
	"BOOKS", "BOOST", "BOOTH", "BOOTS", "BOUND", "BOXES", "BRAIN", "BRAKE",
	"BRAND", "BRASS", "BRAVE", "BREAD", "BREAK", "BREED", "BRICK", "BRIDE",
	"BRIEF", "BRING", "BRINK", "BROAD", "BROKE", "BROOK", "BROWN", "BRUSH",
	"BUILD", "BUILT", "BUNCH", "BUNNY", "BURNS", "BURST", "BUSES", "BUYER",
	"CABIN", "CABLE", "CACHE", "CALLS", "CAMEL", "CAMPS", "CANDY", "CARDS",
	"CARGO", "CARRY", "CARVE", "CASES", "CATCH", "CAUSE", "CAVES", "CEASE",
	"CHAIN", "CHAIR", "CHAOS", "CHARM", "CHART", "CHASE", "CHEAP", "CHEAT",
	"CHECK", "CHESS", "CHEST", "CHICK", "CHIEF", "CHILD", "CHINA", "CHIPS",
	"CHOSE", "CIVIL", "CLAIM", "CLAMP", "CLASH", "CLASS", "CLEAN", "CLEAR",
	"CLERK", "CLICK", "CLIFF", "CLIMB", "CLOCK", "CLOSE", "CLOTH", "CLOUD",
	"CLUBS", "CLUES", "COACH", "COALS", "COAST", "COATS", "CODES", "COINS",
	"CORAL", "COULD", "COUNT", "COURT", "COVER", "CRACK", "CRAFT", "CRANE",
	"CRASH", "CRAZY", "CREAM", "CREEP", "CREWS", "CRIME", "CRISP", "CROPS",
	"CROSS", "CROWD", "CROWN", "CRUDE", "CRUEL", "CRUSH", "CURVE", "CYCLE",
	"DADDY", "DAILY", "DAIRY", "DANCE", "DATED", "DEALT", "DEATH", "DEBUT",
	"DECOR", "DELAY", "DELTA", "DENSE", "DEPTH", "DEVIL", "DIARY", "DIGIT",
	"DIRTY", "DISCO", "DIVER", "DOING", "DOORS", "DOUBT", "DOZEN", "DRAFT",
	"DRAIN", "DRAMA", "DRANK", "DRAWN", "DREAM", "DRESS", "DRIED", "DRILL",
	"DRINK", "DRIVE", "DROVE", "DRUGS", "DRUMS", "DRUNK", "EAGER", "EAGLE",
	"EARLY", "EARTH", "EATEN", "EIGHT", "ELDER", "ELECT", "ELITE", "EMPTY",
	"ENEMY", "ENJOY", "ENTER", "ENTRY", "EQUAL", "ERROR", "EVENT", "EVERY",
	"EXACT", "EXILE", "EXIST", "EXTRA", "FABLE", "FACED", "FACTS", "FADED",
	"FAILS", "FAIRY", "FAITH", "FALSE", "FANCY", "FARMS", "FATAL", "FAULT",
	"FAVOR", "FEARS", "FEAST", "FEEDS", "FEELS", "FEVER", "FIBER", "FIELD",
	"FIERY", "FIFTH", "FIFTY", "FIGHT", "FILED", "FILLS", "FILMS", "FINAL",
	"FINDS", "FINED", "FIRES", "FIRMS", "FIRST", "FIXED", "FLAGS", "FLAME",
	"FLASH", "FLEET", "FLESH", "FLIES", "FLOAT", "FLOCK", "FLOOD", "FLOOR",
	"FLOUR", "FLOWS", "FLUID", "FLUSH", "FOCAL", "FOCUS", "FOLKS", "FONTS",
	"FOODS", "FORCE", "FORMS", "FORTH", "FORTY", "FORUM", "FOUND", "FRAME",
	"FRANK", "FRAUD", "FRESH", "FRIED", "FRONT", "FROST", "FRUIT", "FULLY",
	"FUNDS", "FUNNY", "GAMES", "GANGS", "GATES", "GEARS", "GENRE", "GIFTS",
	"GIRLS", "GIVEN", "GIVES", "GLASS", "GLOBE", "GLORY", "GLOVE", "GOALS",
	"GOATS", "GOING", "GOODS", "GRACE", "GRADE", "GRAIN", "GRAND", "GRANT",
	"GRAPE", "GRAPH", "GRASP", "GRASS", "GRAVE", "GREAT", "GREEK", "GREEN",
	"GREET", "GRIEF", "GRILL", "GRIND", "GRIPS", "GROSS", "GROUP", "GROWN",
	"GROWS", "GUARD", "GUESS", "GUEST", "GUIDE", "GUILD", "GUILT", "HABIT",
	"HANDS", "HANDY", "HAPPY", "HARRY", "HARSH", "HASTE", "HATED", "HEADS",
	"HEALS", "HEARD", "HEART", "HEAVY", "HEDGE", "HEELS", "HELPS", "HENRY",
	"HERBS", "HIDES", "HILLS", "HINTS", "HIRES", "HOLDS", "HOLES", "HOLLY",
	"HOMES", "HONEY", "HOOKS", "HOPES", "HORNS", "HORSE", "HOSTS", "HOTEL",
	"HOURS", "HOUSE", "HOVER", "HUMAN", "HUMOR", "HURRY", "HURTS", "IDEAL",
	"IDEAS", "IMAGE", "IMPLY", "INDEX", "INDIE", "INNER", "INPUT", "INTRO",
	"IONIC", "IRISH", "IRONS", "ISSUE", "ITEMS", "IVORY", "JAPAN", "JEANS",
	"JEWEL", "JIMMY", "JOINS", "JOINT", "JOKES", "JONES", "JUDAS", "JUDGE",
	"JUICE", "JUMBO", "JUMPS", "KEEPS", "KILLS", "KINDS", "KINGS", "KNIFE",
	"KNOCK", "KNOTS", "KNOWN", "KNOWS", "LABEL", "LABOR", "LACKS", "LAKES",
	"LAMPS", "LANDS", "LANES", "LARGE", "LASER", "LASTS", "LATER", "LAUGH",
	"LAYER", "LEADS", "LEARN", "LEASE", "LEAST", "LEAVE", "LEDGE", "LEGAL",
	"LEMON", "LEVEL", "LEWIS", "LIFTS", "LIGHT", "LIKED", "LIKES", "LIMIT",
	"LINED", "LINES", "LINKS", "LIONS", "LISTS", "LIVED", "LIVER", "LIVES",
	"LOANS", "LOBBY", "LOCAL", "LOCKS", "LODGE", "LOGIC", "LOOKS", "LOOPS",
	"LOOSE", "LORDS", "LOSES", "LOVED", "LOVER", "LOVES", "LOWER", "LOYAL",
	"LUCKY", "LUNCH", "LUNGS", "LYING", "LYRIC", "MAGIC", "MAILS", "MAJOR",
	"MAKER", "MAKES", "MALES", "MALLS", "MANGA", "MAPLE", "MARCH", "MARIA",
	"MARKS", "MARRY", "MATCH", "MATES", "MAYBE", "MAYOR", "MEALS", "MEANS",
	"MEANT", "MEATS", "MEDAL", "MEDIA", "MEETS", "MELON", "MELTS", "MEMOS",
	"MENUS", "MERCY", "MERGE", "MERIT", "MERRY", "METAL", "METER", "MICRO",
	"MIGHT", "MILES", "MILLS", "MINDS", "MINES", "MINOR", "MINUS", "MIXED",
	"MIXES", "MODEL", "MODES", "MONEY", "MONTH", "MOODS", "MORAL", "MOTOR",
	"MOULD", "MOUNT", "MOUSE", "MOUTH", "MOVED", "MOVES", "MOVIE", "MUSIC",
	"MYTHS", "NAILS", "NAKED", "NAMED", "NAMES", "NASTY", "NAVAL", "NEEDS",
	"NERVE", "NEVER", "NEWLY", "NIGHT", "NINTH", "NOBLE", "NODES", "NOISE",
	"NORMS", "NORTH", "NOTED", "NOTES", "NOVEL", "NURSE", "OCCUR", "OCEAN",
	"OFFER", "OFTEN", "OLDER", "OLIVE", "OPENS", "OPERA", "ORDER", "ORGAN",
	"OTHER", "OUGHT", "OUTER", "OWNED", "OWNER", "PACED", "PAGES", "PAINT",
	"PAIRS", "PANEL", "PANIC", "PAPER", "PARKS", "PARTS", "PARTY", "PASTA",
	"PASTE", "PATCH", "PATHS", "PAUSE", "PEACE", "PEAKS", "PEARL", "PENNY",
	"PETER", "PHASE", "PHONE", "PHOTO", "PIANO", "PICKS", "PIECE", "PILES",
	"PILOT", "PIPES", "PITCH", "PIZZA", "PLACE", "PLAIN", "PLANE", "PLANT",
	"PLATE", "PLAYS", "PLAZA", "PLOTS", "POEMS", "POETS", "POINT", "POKER",
	"POLES", "POOLS", "PORCH", "POSES", "POUND", "POWER", "PRESS", "PRICE",
	"PRIDE", "PRIME", "PRINT", "PRIOR", "PRIZE", "PROOF", "PROPS", "PROUD",
	"PROVE", "PULLS", "PULSE", "PUMPS", "PUNCH", "PUPIL", "PURSE", "QUEEN",
	"QUERY", "QUEST", "QUICK", "QUIET", "QUITE", "QUOTE", "RACES", "RADIO",
	"RAILS", "RAINS", "RAISE", "RANGE", "RANKS", "RAPID", "RATES", "RATIO",
	"REACH", "READS", "READY", "REALM", "REBEL", "REFER", "RELAX", "RELAY",
	"REMIX", "REPLY", "RESET", "RIGHT", "RIGID", "RINGS", "RISES", "RISKS",
	"RIVAL", "RIVER", "ROADS", "ROAST", "ROBES", "ROBIN", "ROBOT", "ROCKS",
	"ROGER", "ROLES", "ROLLS", "ROMAN", "ROOMS", "ROOTS", "ROSES", "ROUGH",
	"ROUND", "ROUTE", "ROYAL", "RUGBY", "RUINS", "RULES", "RURAL", "SADLY",
	"SAFER", "SALES", "SALON", "SANDY", "SAUCE", "SAVED", "SAVES", "SCALE",
	"SCARE", "SCENE", "SCOPE", "SCORE", "SCOTS", "SEALS", "SEATS", "SEEDS",
	"SEEKS", "SEEMS", "SELLS", "SENSE", "SERVE", "SETUP", "SEVEN", "SHADE",
	"SHAKE", "SHALL", "SHAME", "SHAPE", "SHARE", "SHARK", "SHARP", "SHEEP",
	"SHEET", "SHELF", "SHELL", "SHIFT", "SHINE", "SHIPS", "SHIRT", "SHOCK",
	"SHOES", "SHOOT", "SHOPS", "SHORT", "SHOWN", "SHOWS", "SIDED", "SIDES",
	"SIGHT", "SIGNS", "SILLY", "SINCE", "SINGS", "SITES", "SIXTH", "SIXTY",
	"SIZED", "SIZES", "SKILL", "SKINS", "SKULL", "SLEEP", "SLICE", "SLIDE",
	"SLOPE", "SMALL", "SMART", "SMELL", "SMILE", "SMITH", "SMOKE", "SNACK",
	"SNAKE", "SNAPS", "SNEAK", "SNOOP", "SNOWY", "SOAPY", "SOCKS", "SOFAS",
	"SOLAR", "SOLID", "SOLVE", "SONGS", "SONIC", "SORRY", "SORTS", "SOULS",
	"SOUND", "SOUPS", "SOUTH", "SPACE", "SPARE", "SPARK", "SPEAK", "SPEED",
	"SPELL", "SPEND", "SPENT", "SPICE", "SPINE", "SPITE", "SPLIT", "SPOKE",
	"SPORT", "SPOTS", "SPRAY", "SQUAD", "STAFF", "STAGE", "STAKE", "STAMP",
	"STAND", "STARS", "START", "STATE", "STAYS", "STEAM", "STEEL", "STEEP",
	"STEER", "STEMS", "STEPS", "STICK", "STILL", "STING", "STOCK", "STONE",
	"STOOD", "STOPS", "STORE", "STORM", "STORY", "STRIP", "STUCK", "STUDY",
	"STUFF", "STYLE", "SUGAR", "SUITE", "SUITS", "SUPER", "SWEAR", "SWEAT",
	"SWEET", "SWEPT", "SWIFT", "SWING", "SWISS", "SWORD", "SWORN", "TABLE",
	"TAKEN", "TAKES", "TALES", "TALKS", "TANKS", "TAPES", "TASKS", "TASTE",
	"TAXES", "TEACH", "TEAMS", "TEARS", "TEENS", "TEETH", "TELLS", "TENTH",
	"TERMS", "TERRY", "TESTS", "TEXAS", "TEXTS", "THANK", "THEFT", "THEIR",
	"THEME", "THERE", "THESE", "THICK", "THIEF", "THING", "THINK", "THIRD",
	"THOSE", "THREE", "THREW", "THROW", "THUMB", "TIDAL", "TIGER", "TIGHT",
	"TILED", "TILES", "TIMER", "TIMES", "TIRED", "TITLE", "TODAY", "TOKEN",
	"TOOLS", "TOOTH", "TOPIC", "TOTAL", "TOUCH", "TOUGH", "TOURS", "TOWER",
	"TOWNS", "TOXIC", "TRACK", "TRADE", "TRAIL", "TRAIN", "TRAIT", "TRASH",
	"TREAT", "TREND", "TRIAL", "TRIBE", "TRICK", "TRIED", "TRIES", "TRIPS",
	"TRULY", "TRUMP", "TRUNK", "TRUST", "TRUTH", "TUBES", "TUNED", "TURNS",
	"TWEET", "TWICE", "TWINS", "TWIST", "TYPED", "TYPES", "UNCLE", "UNDER",
	"UNDUE", "UNION", "UNITY", "UNTIL", "UPPER", "UPSET", "URBAN", "URGED",
	"USAGE", "USERS", "USING", "USUAL", "VALID", "VALUE", "VIDEO", "VIEWS",
	"VINYL", "VIRAL", "VIRUS", "VISIT", "VITAL", "VOCAL", "VOICE", "VOTED",
	"VOTES", "WAGES", "WAIST", "WAITS", "WAKES", "WALKS", "WALLS", "WANTS",
	"WARMS", "WARNS", "WASTE", "WATCH", "WATER", "WAVES", "WEARY", "WEIRD",
	"WELLS", "WELSH", "WHATS", "WHEAT", "WHEEL", "WHERE", "WHICH", "WHILE",
	"WHIPS", "WHITE", "WHOLE", "WHOSE", "WIDER", "WIDOW", "WIDTH", "WILDE",
	"WINDS", "WINES", "WINGS", "WIPES", "WIRED", "WIRES", "WITCH", "WIVES",
	"WOMAN", "WOMEN", "WOODS", "WORDS", "WORKS", "WORLD", "WORRY", "WORSE",
	"WORST", "WORTH", "WOULD", "WOUND", "WRIST", "WRITE", "WRONG", "WROTE",
	"YARDS", "YEARS", "YEAST", "YIELD", "YOUNG", "YOURS", "YOUTH", "ZONES",
}
