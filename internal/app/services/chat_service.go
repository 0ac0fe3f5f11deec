package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/upgoma/upg-portal/internal/app/models"
	"github.com/upgoma/upg-portal/internal/pkg/apperrors"
)

// Greeting opens every new chat session.
const Greeting = "Bonjour ! Je suis l'assistant IA de l'UPG. Comment puis-je vous aider aujourd'hui ?"

// ApologyMessage replaces the assistant reply whenever generation
// fails, whatever the cause.
const ApologyMessage = "Désolé, je rencontre une difficulté technique pour me connecter à mes serveurs. Veuillez vérifier votre connexion ou contacter notre support technique au +243973380118."

// systemInstruction pins the assistant to its institutional persona.
const systemInstruction = "Tu es l'assistant virtuel officiel de l'Université Polytechnique de Goma (UPG). " +
	"Tu réponds en français, avec un ton professionnel, chaleureux et institutionnel. " +
	"Tu renseignes les visiteurs sur les facultés (Polytechnique, Sciences Économiques, Santé Publique, " +
	"Management, Sciences de Développement, Sciences Agronomiques), les conditions d'admission, " +
	"les frais académiques et la vie sur le campus de Goma. " +
	"Pour toute question administrative précise, tu orientes vers le service des inscriptions au " +
	models.ContactPhone + " ou " + models.ContactEmail + ". " +
	"Tu restes concis et tu ne réponds pas aux questions sans rapport avec l'université."

// Completer produces the assistant reply for a message given the prior
// transcript.
type Completer interface {
	Complete(ctx context.Context, history []models.ChatMessage, message string) (string, error)
}

// GeminiCompleter implements Completer against the Gemini API.
type GeminiCompleter struct {
	client *genai.Client
	model  string
}

// NewGeminiCompleter creates a Gemini-backed completer.
func NewGeminiCompleter(ctx context.Context, apiKey, model string) (*GeminiCompleter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiCompleter{client: client, model: model}, nil
}

// Complete sends the full transcript plus the new message and returns
// the generated reply text.
func (g *GeminiCompleter) Complete(ctx context.Context, history []models.ChatMessage, message string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		contents = append(contents, genai.NewContentFromText(msg.Text, genai.Role(msg.Role)))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.7),
		TopP:              genai.Ptr[float32](0.95),
		TopK:              genai.Ptr[float32](64),
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// ChatService keeps per-session transcripts and cycles them through the
// completer.
type ChatService struct {
	completer Completer // nil when the assistant is not configured
	logger    zerolog.Logger

	mu       sync.Mutex
	sessions map[string][]models.ChatMessage
}

// NewChatService creates the chat service. With a nil completer every
// reply is the apology message.
func NewChatService(completer Completer, logger zerolog.Logger) *ChatService {
	return &ChatService{
		completer: completer,
		logger:    logger,
		sessions:  make(map[string][]models.ChatMessage),
	}
}

// CreateSession opens a transcript seeded with the assistant greeting.
func (s *ChatService) CreateSession() (string, []models.ChatMessage) {
	id := uuid.New().String()
	transcript := []models.ChatMessage{{Role: models.ChatRoleAssistant, Text: Greeting}}

	s.mu.Lock()
	s.sessions[id] = transcript
	s.mu.Unlock()

	return id, transcript
}

// Transcript returns a copy of the session transcript.
func (s *ChatService) Transcript(id string) ([]models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	transcript, ok := s.sessions[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	out := make([]models.ChatMessage, len(transcript))
	copy(out, transcript)
	return out, nil
}

// Send appends the user message to the transcript immediately, then
// generates the reply and appends it. Generation runs outside the lock,
// so two overlapping sends on one session may interleave their history
// snapshots; each exchange still lands as a user/assistant pair. Any
// generation failure, including a missing completer, yields the fixed
// apology instead of an error.
func (s *ChatService) Send(ctx context.Context, id, message string) (models.ChatMessage, error) {
	s.mu.Lock()
	transcript, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return models.ChatMessage{}, apperrors.ErrResourceNotFound
	}
	history := make([]models.ChatMessage, len(transcript))
	copy(history, transcript)
	s.sessions[id] = append(transcript, models.ChatMessage{Role: models.ChatRoleUser, Text: message})
	s.mu.Unlock()

	reply := models.ChatMessage{Role: models.ChatRoleAssistant, Text: ApologyMessage}
	if s.completer != nil {
		text, err := s.completer.Complete(ctx, history, message)
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Str("sessionID", id).Msg("Assistant reply generation failed")
		case text == "":
			s.logger.Warn().Str("sessionID", id).Msg("Assistant returned an empty reply")
		default:
			reply.Text = text
		}
	}

	s.mu.Lock()
	s.sessions[id] = append(s.sessions[id], reply)
	s.mu.Unlock()

	return reply, nil
}
