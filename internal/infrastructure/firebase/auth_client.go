package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"

	"fieldtofork/pkg/errors"
)

const (
	signInEndpoint      = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"
	sendOobCodeEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:sendOobCode"
)

type AuthClient struct {
	client     *auth.Client
	apiKey     string
	httpClient *http.Client
}

func NewAuthClient(client *auth.Client, apiKey string) *AuthClient {
	return &AuthClient{
		client: client,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (f *AuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

func (f *AuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

func (f *AuthClient) DeleteUser(ctx context.Context, uid string) error {
	return f.client.DeleteUser(ctx, uid)
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken string `json:"idToken"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithEmailPassword exchanges credentials for an ID token through the
// Identity Toolkit REST endpoint. The backend distinguishes the common
// failure causes, so surface each with its own message.
func (f *AuthClient) SignInWithEmailPassword(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return "", errors.Internal("Failed to encode sign-in request", err)
	}

	url := fmt.Sprintf("%s?key=%s", signInEndpoint, f.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Internal("Failed to build sign-in request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", errors.Internal("Failed to reach authentication provider", err)
	}
	defer resp.Body.Close()

	var result signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Internal("Failed to decode sign-in response", err)
	}

	if result.Error != nil {
		switch result.Error.Message {
		case "EMAIL_NOT_FOUND":
			return "", errors.Unauthorized("No account exists for this email", nil)
		case "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
			return "", errors.Unauthorized("Incorrect password", nil)
		case "INVALID_EMAIL":
			return "", errors.BadRequest("Invalid email format", nil)
		default:
			return "", errors.Unauthorized("Authentication failed", fmt.Errorf("%s", result.Error.Message))
		}
	}

	if result.IDToken == "" {
		return "", errors.Unauthorized("Authentication failed", nil)
	}

	return result.IDToken, nil
}

type sendOobCodeRequest struct {
	RequestType string `json:"requestType"`
	Email       string `json:"email"`
}

type sendOobCodeResponse struct {
	Email string `json:"email"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SendPasswordReset asks Identity Toolkit to email a password reset link to
// the account. The backend sends the mail itself; nothing further happens
// server-side until the user follows the link.
func (f *AuthClient) SendPasswordReset(ctx context.Context, email string) error {
	body, err := json.Marshal(sendOobCodeRequest{
		RequestType: "PASSWORD_RESET",
		Email:       email,
	})
	if err != nil {
		return errors.Internal("Failed to encode password reset request", err)
	}

	url := fmt.Sprintf("%s?key=%s", sendOobCodeEndpoint, f.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Internal("Failed to build password reset request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return errors.Internal("Failed to reach authentication provider", err)
	}
	defer resp.Body.Close()

	var result sendOobCodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return errors.Internal("Failed to decode password reset response", err)
	}

	if result.Error != nil {
		switch result.Error.Message {
		case "EMAIL_NOT_FOUND":
			return errors.NotFound("Account", nil)
		case "INVALID_EMAIL":
			return errors.BadRequest("Invalid email format", nil)
		default:
			return errors.Internal("Failed to send password reset email", fmt.Errorf("%s", result.Error.Message))
		}
	}

	return nil
}
