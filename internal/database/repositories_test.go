package database

import (
	"testing"

	"github.com/ZhalgasKracavshik/smartspeak/pkg/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	if err := ConnectTest(t.TempDir()); err != nil {
		t.Fatalf("ConnectTest: %v", err)
	}
	t.Cleanup(func() { Close() })
}

func TestProgressRepositoryRoundTrip(t *testing.T) {
	setupTestDB(t)
	repo := NewProgressRepository()

	_, found, err := repo.Get("user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Fatalf("fresh database reported a document")
	}

	doc := []byte(`{"experience":42,"level":1}`)
	if err := repo.Upsert("user-1", 2, doc); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, found, err := repo.Get("user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found || string(got) != string(doc) {
		t.Errorf("Get = %s, found=%v", got, found)
	}
}

func TestProgressRepositoryOverwrite(t *testing.T) {
	setupTestDB(t)
	repo := NewProgressRepository()

	if err := repo.Upsert("user-1", 2, []byte(`{"experience":10}`)); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Upsert("user-1", 2, []byte(`{"experience":20}`)); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	got, _, err := repo.Get("user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"experience":20}` {
		t.Errorf("Get = %s, want the second document", got)
	}

	ids, err := repo.AllUserIDs()
	if err != nil {
		t.Fatalf("AllUserIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != "user-1" {
		t.Errorf("AllUserIDs = %v", ids)
	}
}

func TestSettingsRepository(t *testing.T) {
	setupTestDB(t)
	repo := NewSettingsRepository()

	_, found, err := repo.Get("user-1", SeedKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Fatalf("unset key reported found")
	}

	if err := repo.Set("user-1", SeedKey, "seed-abc"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := repo.Set("user-2", SeedKey, "seed-def"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	value, found, err := repo.Get("user-1", SeedKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found || value != "seed-abc" {
		t.Errorf("Get = %q, found=%v", value, found)
	}

	// Overwrite in place.
	if err := repo.Set("user-1", "interface-language", "ru"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := repo.Set("user-1", "interface-language", "kk"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, _, _ = repo.Get("user-1", "interface-language")
	if value != "kk" {
		t.Errorf("overwritten value = %q", value)
	}

	all, err := repo.UsersWithSetting(SeedKey)
	if err != nil {
		t.Fatalf("UsersWithSetting: %v", err)
	}
	if len(all) != 2 || all["user-1"] != "seed-abc" || all["user-2"] != "seed-def" {
		t.Errorf("UsersWithSetting = %v", all)
	}
}

func TestWordRepository(t *testing.T) {
	setupTestDB(t)
	repo := NewWordRepository()

	topicID, err := GetOrCreateTopic("Animals")
	if err != nil {
		t.Fatalf("GetOrCreateTopic: %v", err)
	}
	// Идемпотентность: то же имя возвращает тот же id
	again, err := GetOrCreateTopic("Animals")
	if err != nil {
		t.Fatalf("GetOrCreateTopic: %v", err)
	}
	if topicID != again {
		t.Errorf("topic ids differ: %d vs %d", topicID, again)
	}

	words := []models.Word{
		{English: "cat", Russian: "кошка", Kazakh: "мысық", TopicID: topicID, Level: "A1"},
		{English: "dog", Russian: "собака", Kazakh: "ит", TopicID: topicID, Level: "A1"},
		{English: "elephant", Russian: "слон", TopicID: topicID, Level: "A2"},
	}
	for i := range words {
		if err := repo.Upsert(&words[i]); err != nil {
			t.Fatalf("Upsert(%s): %v", words[i].English, err)
		}
	}

	all, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("GetAll returned %d words", len(all))
	}

	byTopic, err := repo.GetByTopic(topicID, 10)
	if err != nil {
		t.Fatalf("GetByTopic: %v", err)
	}
	if len(byTopic) != 3 {
		t.Errorf("GetByTopic returned %d words", len(byTopic))
	}

	a1, err := repo.GetByLevel("A1", 10)
	if err != nil {
		t.Fatalf("GetByLevel: %v", err)
	}
	if len(a1) != 2 {
		t.Errorf("GetByLevel(A1) returned %d words", len(a1))
	}

	// Upsert on the same (english, topic) pair updates rather than adds.
	update := models.Word{English: "cat", Russian: "кот", TopicID: topicID, Level: "A1"}
	if err := repo.Upsert(&update); err != nil {
		t.Fatalf("Upsert update: %v", err)
	}
	all, _ = repo.GetAll()
	if len(all) != 3 {
		t.Errorf("update added a row: %d words", len(all))
	}

	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics: %v", err)
	}
	if len(topics) != 1 || topics[0].Name != "Animals" {
		t.Errorf("GetAllTopics = %+v", topics)
	}
}

func TestBankRepository(t *testing.T) {
	setupTestDB(t)
	repo := NewBankRepository()

	templates := []models.QuestionTemplate{
		{Question: "Pick one.", Options: []string{"a", "b", "c", "d"}, Correct: 2, Explanation: "c is right"},
		{Question: "Pick another.", Options: []string{"w", "x", "y", "z"}, Correct: 0, Explanation: "w is right"},
	}
	for _, tmpl := range templates {
		if err := repo.SaveTemplate("Articles", tmpl); err != nil {
			t.Fatalf("SaveTemplate: %v", err)
		}
	}
	if err := repo.SaveTemplate("Prepositions", models.QuestionTemplate{
		Question: "In or on?", Options: []string{"in", "on", "at", "by"}, Correct: 1,
	}); err != nil {
		t.Fatalf("SaveTemplate: %v", err)
	}

	banks, err := repo.LoadBanks()
	if err != nil {
		t.Fatalf("LoadBanks: %v", err)
	}
	if len(banks["Articles"]) != 2 || len(banks["Prepositions"]) != 1 {
		t.Fatalf("LoadBanks = %v", banks)
	}
	// Insertion order preserved.
	if banks["Articles"][0].Question != "Pick one." {
		t.Errorf("order not stable: %+v", banks["Articles"])
	}
	if got := banks["Articles"][0]; got.Correct != 2 || len(got.Options) != 4 {
		t.Errorf("template round-trip: %+v", got)
	}

	// Re-saving the same (topic, question) updates the row.
	if err := repo.SaveTemplate("Articles", models.QuestionTemplate{
		Question: "Pick one.", Options: []string{"a", "b", "c", "d"}, Correct: 3,
	}); err != nil {
		t.Fatalf("SaveTemplate update: %v", err)
	}
	banks, _ = repo.LoadBanks()
	if len(banks["Articles"]) != 2 || banks["Articles"][0].Correct != 3 {
		t.Errorf("update: %+v", banks["Articles"])
	}
}
