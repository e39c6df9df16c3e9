package generator

import "github.com/ZhalgasKracavshik/smartspeak/pkg/models"

// Topics is the fixed rotation for the 200-level learning path. Lesson i
// (1-based) gets Topics[(i-1) % 16], so each topic appears 12-13 times.
var Topics = []string{
	"Present Simple", "Present Continuous", "Past Simple", "Past Continuous",
	"Present Perfect", "Past Perfect", "Future Simple", "Future Continuous",
	"Conditionals", "Vocabulary", "Phrasal Verbs", "Irregular Verbs",
	"Articles", "Prepositions", "Modal Verbs", "Passive Voice",
}

// curatedBanks holds the hand-written question templates per topic. Topics
// without a bank fall back to synthesized placeholder questions; the bank
// can be extended at runtime from imported rows (see NewWithBank).
var curatedBanks = map[string][]models.QuestionTemplate{
	"Present Simple": {
		{Question: "She ___ to school every day.", Options: []string{"go", "goes", "going", "gone"}, Correct: 1, Explanation: "Use 'goes' for 3rd person singular."},
		{Question: "They ___ football on Sundays.", Options: []string{"play", "plays", "playing", "played"}, Correct: 0, Explanation: "Use base form for plural subjects."},
		{Question: "I ___ coffee in the morning.", Options: []string{"drink", "drinks", "drinking", "drank"}, Correct: 0, Explanation: "Use base form for 'I'."},
		{Question: "He ___ his homework daily.", Options: []string{"do", "does", "doing", "did"}, Correct: 1, Explanation: "Use 'does' for 3rd person singular."},
		{Question: "We ___ English at school.", Options: []string{"study", "studies", "studying", "studied"}, Correct: 0, Explanation: "Use base form for 'we'."},
		{Question: "The sun ___ in the east.", Options: []string{"rise", "rises", "rising", "rose"}, Correct: 1, Explanation: "Facts use Present Simple with 's' for 3rd person."},
		{Question: "My parents ___ in London.", Options: []string{"live", "lives", "living", "lived"}, Correct: 0, Explanation: "Plural subject uses base form."},
		{Question: "She ___ her teeth twice a day.", Options: []string{"brush", "brushes", "brushing", "brushed"}, Correct: 1, Explanation: "Regular action, 3rd person singular."},
		{Question: "I ___ music every day.", Options: []string{"listen to", "listens to", "listening to", "listened to"}, Correct: 0, Explanation: "First person uses base form."},
		{Question: "He ___ very fast.", Options: []string{"run", "runs", "running", "ran"}, Correct: 1, Explanation: "3rd person singular needs 's'."},
	},
	"Present Continuous": {
		{Question: "I ___ TV right now.", Options: []string{"watch", "am watching", "watches", "watched"}, Correct: 1, Explanation: "Use 'am/is/are + -ing' for actions happening now."},
		{Question: "She ___ a book.", Options: []string{"read", "reads", "is reading", "reading"}, Correct: 2, Explanation: "Use 'is reading' for 3rd person singular."},
		{Question: "They ___ football.", Options: []string{"play", "are playing", "plays", "played"}, Correct: 1, Explanation: "Use 'are playing' for plural subjects."},
		{Question: "We ___ dinner now.", Options: []string{"cook", "are cooking", "cooks", "cooked"}, Correct: 1, Explanation: "Current action requires Present Continuous."},
		{Question: "He ___ to music.", Options: []string{"listen", "listens", "is listening", "listened"}, Correct: 2, Explanation: "Use 'is listening' for current action."},
		{Question: "I ___ my homework at the moment.", Options: []string{"do", "am doing", "does", "did"}, Correct: 1, Explanation: "At the moment signals Present Continuous."},
		{Question: "The children ___ in the garden.", Options: []string{"play", "plays", "are playing", "played"}, Correct: 2, Explanation: "Current activity uses am/is/are + -ing."},
		{Question: "She ___ on the phone.", Options: []string{"talk", "talks", "is talking", "talked"}, Correct: 2, Explanation: "Ongoing action right now."},
		{Question: "We ___ for the bus.", Options: []string{"wait", "waits", "are waiting", "waited"}, Correct: 2, Explanation: "Waiting now = Present Continuous."},
		{Question: "You ___ too fast!", Options: []string{"drive", "drives", "are driving", "drove"}, Correct: 2, Explanation: "Action happening now."},
	},
	"Past Simple": {
		{Question: "I ___ to the cinema yesterday.", Options: []string{"go", "goes", "went", "gone"}, Correct: 2, Explanation: "'went' is the past form of 'go'."},
		{Question: "She ___ a beautiful dress.", Options: []string{"buy", "buys", "bought", "buying"}, Correct: 2, Explanation: "'bought' is the past form of 'buy'."},
		{Question: "They ___ football last week.", Options: []string{"play", "plays", "played", "playing"}, Correct: 2, Explanation: "Regular verb: play + ed = played."},
		{Question: "We ___ our homework yesterday.", Options: []string{"do", "does", "did", "done"}, Correct: 2, Explanation: "'did' is the past form of 'do'."},
		{Question: "He ___ his keys.", Options: []string{"lose", "loses", "lost", "losing"}, Correct: 2, Explanation: "'lost' is the irregular past form."},
		{Question: "I ___ breakfast at 8 AM.", Options: []string{"have", "has", "had", "having"}, Correct: 2, Explanation: "Past time marker requires Past Simple."},
		{Question: "She ___ to Paris last year.", Options: []string{"travel", "travels", "travelled", "travelling"}, Correct: 2, Explanation: "Last year = Past Simple."},
		{Question: "They ___ the movie.", Options: []string{"enjoy", "enjoys", "enjoyed", "enjoying"}, Correct: 2, Explanation: "Regular past: enjoy + ed."},
		{Question: "We ___ late yesterday.", Options: []string{"arrive", "arrives", "arrived", "arriving"}, Correct: 2, Explanation: "Yesterday = Past Simple."},
		{Question: "He ___ me a gift.", Options: []string{"give", "gives", "gave", "giving"}, Correct: 2, Explanation: "'gave' is irregular past."},
	},
}
