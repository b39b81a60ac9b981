package services

import (
	"fmt"
	"sync"
	"time"

	"vita-path-api/pkg/models"

	"github.com/google/uuid"
)

// DefaultReplyDelay is the cosmetic processing latency before a bot reply
// is appended. Ordering, not the delay itself, is the contract.
const DefaultReplyDelay = 1500 * time.Millisecond

// greetingMessage seeds every new session.
const greetingMessage = "नमस्ते! I'm your AI health and lifestyle assistant. " +
	"मैं आपकी मदद कर सकता हूं with meal suggestions, navigation, safety tips, " +
	"Ayurvedic remedies, and more. आप हिंदी या English में बात कर सकते हैं। " +
	"What would you like to know?"

// ChatService keeps per-session transcripts in memory and answers each user
// submission through the intent classifier. Transcripts are append-only and
// reset with the process; there is no persistence.
type ChatService struct {
	classifier *IntentClassifier
	replyDelay time.Duration

	// sendMu serializes submissions so a send issued while a reply is
	// pending still lands after that reply, keeping the transcript in
	// strict user/bot alternation.
	sendMu sync.Mutex

	mu       sync.RWMutex
	sessions map[string][]models.ChatMessage
}

// NewChatService creates a chat service. replyDelay < 0 selects the default;
// tests pass 0 to skip the artificial latency.
func NewChatService(classifier *IntentClassifier, replyDelay time.Duration) *ChatService {
	if replyDelay < 0 {
		replyDelay = DefaultReplyDelay
	}
	return &ChatService{
		classifier: classifier,
		replyDelay: replyDelay,
		sessions:   make(map[string][]models.ChatMessage),
	}
}

// StartSession creates a session seeded with the bilingual greeting and
// returns its id.
func (cs *ChatService) StartSession() string {
	sessionID := uuid.New().String()
	greeting := models.ChatMessage{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Author:    models.AuthorBot,
		Text:      greetingMessage,
		Timestamp: time.Now().UTC(),
		Category:  "general",
		Language:  LanguageEnglish,
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.sessions[sessionID] = []models.ChatMessage{greeting}
	return sessionID
}

// Send appends the user message immediately, then the classified bot reply
// strictly after it. Concurrent sends are serialized, never interleaved.
// The session is created on demand when sessionID is empty or unknown.
func (cs *ChatService) Send(sessionID, text string) (models.ChatMessage, models.ChatMessage, error) {
	if text == "" {
		return models.ChatMessage{}, models.ChatMessage{}, fmt.Errorf("chat message is required")
	}

	cs.sendMu.Lock()
	defer cs.sendMu.Unlock()

	if sessionID == "" || !cs.sessionExists(sessionID) {
		sessionID = cs.StartSession()
	}

	userMessage := models.ChatMessage{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Author:    models.AuthorUser,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
	cs.append(userMessage)

	if cs.replyDelay > 0 {
		time.Sleep(cs.replyDelay)
	}

	reply := cs.classifier.Respond(text)
	botMessage := models.ChatMessage{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Author:    models.AuthorBot,
		Text:      reply.Body,
		Timestamp: time.Now().UTC(),
		Category:  reply.Category,
		Language:  reply.DetectedLanguage,
	}
	cs.append(botMessage)

	return userMessage, botMessage, nil
}

// History returns a copy of the session transcript.
func (cs *ChatService) History(sessionID string) ([]models.ChatMessage, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	transcript, ok := cs.sessions[sessionID]
	if !ok {
		return nil, false
	}
	out := make([]models.ChatMessage, len(transcript))
	copy(out, transcript)
	return out, true
}

// Suggestions returns the bilingual quick actions shown above the input.
func (cs *ChatService) Suggestions() []models.QuickAction {
	return []models.QuickAction{
		{Text: "Suggest healthy Indian meal", Hindi: "स्वस्थ भारतीय भोजन सुझाएं", Category: "food"},
		{Text: "Plan workout for monsoon", Hindi: "मानसून के लिए व्यायाम योजना", Category: "fitness"},
		{Text: "Safe route in Mumbai traffic", Hindi: "मुंबई ट्रैफिक में सुरक्षित रास्ता", Category: "navigation"},
		{Text: "Ayurvedic remedy for heat", Hindi: "गर्मी के लिए आयुर्वेदिक उपाय", Category: "ayurveda"},
		{Text: "Women safety tips", Hindi: "महिला सुरक्षा सुझाव", Category: "safety"},
	}
}

func (cs *ChatService) sessionExists(sessionID string) bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	_, ok := cs.sessions[sessionID]
	return ok
}

func (cs *ChatService) append(message models.ChatMessage) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.sessions[message.SessionID] = append(cs.sessions[message.SessionID], message)
}
