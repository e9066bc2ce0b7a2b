// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package api

import (
	"net/http"
	"testing"

	"github.com/go-donew/mentoring-api/internal/models"
)

// createConversation creates a conversation through the API as the
// given caller and returns its id.
func (a *testAPI) createConversation(t *testing.T, token, name string) string {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/conversations", token, map[string]any{
		"name":        name,
		"description": "A conversation used in tests.",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("creating conversation %s: status %d: %s", name, rec.Code, rec.Body.String())
	}

	var body struct {
		Conversation models.Conversation `json:"conversation"`
	}
	decodeBody(t, rec, &body)
	return body.Conversation.ID
}

// createQuestion adds a question with the given options and returns
// its id.
func (a *testAPI) createQuestion(t *testing.T, token, conversationID, text string, options []map[string]any) string {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/conversations/"+conversationID+"/questions", token, map[string]any{
		"text":    text,
		"options": options,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("creating question %q: status %d: %s", text, rec.Code, rec.Body.String())
	}

	var body struct {
		Question models.Question `json:"question"`
	}
	decodeBody(t, rec, &body)
	return body.Question.ID
}

func TestConversationAccessFollowsGroupExposure(t *testing.T) {
	a := newTestAPI(t)
	alice := a.signUpUser(t, "Alice", "alice@example.com")
	bob := a.signUpUser(t, "Bob", "bob@example.com")
	root := a.signUpUser(t, "Root", rootEmail)

	exposed := a.createConversation(t, root.Bearer, "Onboarding")
	hidden := a.createConversation(t, root.Bearer, "Exit Interview")

	rec := a.do(t, http.MethodPost, "/groups", root.Bearer, map[string]any{
		"name":         "Cohort",
		"code":         "cohort-code",
		"participants": map[string]models.Role{alice.ID: models.RoleMentee},
		"conversations": map[string][]models.Role{
			exposed: {models.RoleMentee},
			hidden:  {models.RoleMentor},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("creating group: status %d: %s", rec.Code, rec.Body.String())
	}

	// Alice holds mentee, so only the mentee-exposed conversation is
	// reachable.
	rec = a.do(t, http.MethodGet, "/conversations/"+exposed, alice.Bearer, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("exposed conversation status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = a.do(t, http.MethodGet, "/conversations/"+hidden, alice.Bearer, nil)
	assertEnvelope(t, rec, http.StatusForbidden, "not-allowed")

	// Bob is in no group at all.
	rec = a.do(t, http.MethodGet, "/conversations/"+exposed, bob.Bearer, nil)
	assertEnvelope(t, rec, http.StatusForbidden, "not-allowed")

	// Listing filters instead of failing.
	rec = a.do(t, http.MethodGet, "/conversations", alice.Bearer, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d: %s", rec.Code, rec.Body.String())
	}
	var list struct {
		Conversations []models.Conversation `json:"conversations"`
	}
	decodeBody(t, rec, &list)
	if len(list.Conversations) != 1 || list.Conversations[0].ID != exposed {
		t.Fatalf("alice sees %v, want only the exposed conversation", list.Conversations)
	}

	rec = a.do(t, http.MethodGet, "/conversations", bob.Bearer, nil)
	decodeBody(t, rec, &list)
	if len(list.Conversations) != 0 {
		t.Errorf("bob sees %d conversations, want none", len(list.Conversations))
	}
}

func TestAnswerQuestionRecordsAttributeAndFollowsEdge(t *testing.T) {
	a := newTestAPI(t)
	alice := a.signUpUser(t, "Alice", "alice@example.com")
	root := a.signUpUser(t, "Root", rootEmail)

	conversationID := a.createConversation(t, root.Bearer, "Habits")

	// The follow-up question has to exist before the first question
	// can point at it.
	nextID := a.createQuestion(t, root.Bearer, conversationID, "How many hours do you sleep?", []map[string]any{
		{"position": 0, "type": "input", "text": "Hours per night", "attributeId": "sleep-hours"},
	})
	firstID := a.createQuestion(t, root.Bearer, conversationID, "Do you exercise regularly?", []map[string]any{
		{"position": 0, "type": "select", "text": "Yes", "attributeId": "exercises", "value": true, "nextQuestionId": nextID},
		{"position": 1, "type": "select", "text": "No", "attributeId": "exercises", "value": false},
	})

	rec := a.do(t, http.MethodPost, "/groups", root.Bearer, map[string]any{
		"name":          "Cohort",
		"code":          "cohort-code",
		"participants":  map[string]models.Role{alice.ID: models.RoleMentee},
		"conversations": map[string][]models.Role{conversationID: {models.RoleMentee}},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("creating group: status %d: %s", rec.Code, rec.Body.String())
	}

	rec = a.do(t, http.MethodPut, "/conversations/"+conversationID+"/questions/"+firstID+"/answer", alice.Bearer, map[string]any{
		"position": 0,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("answer status = %d: %s", rec.Code, rec.Body.String())
	}

	var answer struct {
		Attribute    *models.Attribute `json:"attribute"`
		NextQuestion *models.Question  `json:"nextQuestion"`
	}
	decodeBody(t, rec, &answer)

	if answer.Attribute == nil || answer.Attribute.ID != "exercises" {
		t.Fatalf("attribute = %+v, want exercises", answer.Attribute)
	}
	if answer.Attribute.Value != true {
		t.Errorf("attribute value = %v, want true", answer.Attribute.Value)
	}
	if len(answer.Attribute.History) != 1 {
		t.Fatalf("history has %d snapshots, want 1", len(answer.Attribute.History))
	}
	snapshot := answer.Attribute.History[0]
	if snapshot.ObserverID != models.BotObserverID {
		t.Errorf("observer = %q, want %q", snapshot.ObserverID, models.BotObserverID)
	}
	if snapshot.Message == nil || snapshot.Message.In != conversationID || snapshot.Message.ID != firstID {
		t.Errorf("snapshot blame = %+v, want conversation %s question %s", snapshot.Message, conversationID, firstID)
	}

	if answer.NextQuestion == nil || answer.NextQuestion.ID != nextID {
		t.Fatalf("next question = %+v, want %s", answer.NextQuestion, nextID)
	}

	// The follow-up takes free-form input and ends the traversal.
	rec = a.do(t, http.MethodPut, "/conversations/"+conversationID+"/questions/"+nextID+"/answer", alice.Bearer, map[string]any{
		"position": 0,
		"input":    7.5,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("input answer status = %d: %s", rec.Code, rec.Body.String())
	}
	decodeBody(t, rec, &answer)
	if answer.Attribute == nil || answer.Attribute.Value != 7.5 {
		t.Fatalf("attribute = %+v, want sleep-hours 7.5", answer.Attribute)
	}
	if answer.NextQuestion != nil {
		t.Errorf("next question = %+v, want none", answer.NextQuestion)
	}
}

func TestAnswerQuestionRejectsBadPosition(t *testing.T) {
	a := newTestAPI(t)
	alice := a.signUpUser(t, "Alice", "alice@example.com")
	root := a.signUpUser(t, "Root", rootEmail)

	conversationID := a.createConversation(t, root.Bearer, "Habits")
	questionID := a.createQuestion(t, root.Bearer, conversationID, "Pick one", []map[string]any{
		{"position": 0, "type": "select", "text": "Only choice"},
	})

	rec := a.do(t, http.MethodPost, "/groups", root.Bearer, map[string]any{
		"name":          "Cohort",
		"code":          "cohort-code",
		"participants":  map[string]models.Role{alice.ID: models.RoleMentee},
		"conversations": map[string][]models.Role{conversationID: {models.RoleMentee}},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("creating group: status %d: %s", rec.Code, rec.Body.String())
	}

	rec = a.do(t, http.MethodPut, "/conversations/"+conversationID+"/questions/"+questionID+"/answer", alice.Bearer, map[string]any{
		"position": 7,
	})
	assertEnvelope(t, rec, http.StatusBadRequest, "improper-payload")
}

func TestAttributeLifecycleOverHTTP(t *testing.T) {
	a := newTestAPI(t)
	alice := a.signUpUser(t, "Alice", "alice@example.com")

	base := "/users/" + alice.ID + "/attributes"

	rec := a.do(t, http.MethodPost, base, alice.Bearer, map[string]any{
		"id":    "quiz-score",
		"value": 40,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = a.do(t, http.MethodPut, base+"/quiz-score", alice.Bearer, map[string]any{
		"value": 55,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Attribute models.Attribute `json:"attribute"`
	}
	decodeBody(t, rec, &body)
	if body.Attribute.Value != 55.0 {
		t.Errorf("value = %v, want 55", body.Attribute.Value)
	}
	if len(body.Attribute.History) != 2 {
		t.Fatalf("history has %d snapshots, want 2", len(body.Attribute.History))
	}
	if body.Attribute.History[0].Value != 40.0 {
		t.Errorf("first snapshot value = %v, want 40", body.Attribute.History[0].Value)
	}
	if body.Attribute.History[1].ObserverID != alice.ID {
		t.Errorf("observer = %q, want the caller", body.Attribute.History[1].ObserverID)
	}

	rec = a.do(t, http.MethodGet, base+"/quiz-score", alice.Bearer, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = a.do(t, http.MethodDelete, base+"/quiz-score", alice.Bearer, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = a.do(t, http.MethodGet, base+"/quiz-score", alice.Bearer, nil)
	assertEnvelope(t, rec, http.StatusNotFound, "entity-not-found")
}

func TestAttributesOfOtherUsersNeedMentorship(t *testing.T) {
	a := newTestAPI(t)
	alice := a.signUpUser(t, "Alice", "alice@example.com")
	bob := a.signUpUser(t, "Bob", "bob@example.com")
	root := a.signUpUser(t, "Root", rootEmail)

	rec := a.do(t, http.MethodGet, "/users/"+alice.ID+"/attributes", bob.Bearer, nil)
	assertEnvelope(t, rec, http.StatusForbidden, "not-allowed")

	a.createGroup(t, root.Bearer, "Cohort", "cohort-code", map[string]models.Role{
		alice.ID: models.RoleMentee,
		bob.ID:   models.RoleMentor,
	})

	rec = a.do(t, http.MethodGet, "/users/"+alice.ID+"/attributes", bob.Bearer, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("mentor list status = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestReportDefinitionsAreRootOnly(t *testing.T) {
	a := newTestAPI(t)
	alice := a.signUpUser(t, "Alice", "alice@example.com")
	root := a.signUpUser(t, "Root", rootEmail)

	rec := a.do(t, http.MethodPost, "/reports", alice.Bearer, map[string]any{
		"name": "Progress",
	})
	assertEnvelope(t, rec, http.StatusForbidden, "not-allowed")

	rec = a.do(t, http.MethodPost, "/reports", root.Bearer, map[string]any{
		"name":  "Progress",
		"input": []string{"quiz-score"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("root create status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = a.do(t, http.MethodGet, "/reports", alice.Bearer, nil)
	assertEnvelope(t, rec, http.StatusForbidden, "not-allowed")
}

func TestRenderReportForUser(t *testing.T) {
	a := newTestAPI(t)
	alice := a.signUpUser(t, "Alice", "alice@example.com")
	bob := a.signUpUser(t, "Bob", "bob@example.com")
	root := a.signUpUser(t, "Root", rootEmail)

	rec := a.do(t, http.MethodPost, "/reports", root.Bearer, map[string]any{
		"name":  "Progress",
		"input": []string{"quiz-score", "never-recorded"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("creating report: status %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Report models.Report `json:"report"`
	}
	decodeBody(t, rec, &created)
	reportID := created.Report.ID

	// Alice records the input attribute herself.
	rec = a.do(t, http.MethodPost, "/users/"+alice.ID+"/attributes", alice.Bearer, map[string]any{
		"id":    "quiz-score",
		"value": 87,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("creating attribute: status %d: %s", rec.Code, rec.Body.String())
	}

	// Without a group exposing the report, even a mentor of nothing
	// is denied.
	rec = a.do(t, http.MethodGet, "/users/"+alice.ID+"/reports/"+reportID, bob.Bearer, nil)
	assertEnvelope(t, rec, http.StatusForbidden, "not-allowed")

	rec = a.do(t, http.MethodPost, "/groups", root.Bearer, map[string]any{
		"name": "Cohort",
		"code": "cohort-code",
		"participants": map[string]models.Role{
			alice.ID: models.RoleMentee,
			bob.ID:   models.RoleMentor,
		},
		"reports": map[string][]models.Role{reportID: {models.RoleMentor}},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("creating group: status %d: %s", rec.Code, rec.Body.String())
	}

	rec = a.do(t, http.MethodGet, "/users/"+alice.ID+"/reports/"+reportID, bob.Bearer, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("render status = %d: %s", rec.Code, rec.Body.String())
	}

	var rendered struct {
		Report     models.Report  `json:"report"`
		Attributes map[string]any `json:"attributes"`
	}
	decodeBody(t, rec, &rendered)
	if rendered.Report.ID != reportID {
		t.Errorf("rendered report id = %q, want %q", rendered.Report.ID, reportID)
	}
	if rendered.Attributes["quiz-score"] != 87.0 {
		t.Errorf("quiz-score = %v, want 87", rendered.Attributes["quiz-score"])
	}
	if _, ok := rendered.Attributes["never-recorded"]; ok {
		t.Error("never-recorded attribute should be absent from the rendering")
	}

	// Alice holds mentee in that group, which is not an exposed role.
	rec = a.do(t, http.MethodGet, "/users/"+alice.ID+"/reports/"+reportID, alice.Bearer, nil)
	assertEnvelope(t, rec, http.StatusForbidden, "not-allowed")
}
