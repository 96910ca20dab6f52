package cms

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/benluxnails/salon-web/models"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Name     string
	Phone    string
}

// Register creates the account in two steps. The backend rejects unknown
// fields at registration time, so only username/email/password go in the
// first call; name, phone and the pending account status are set by a
// follow-up profile update. A failed second step is swallowed: the session
// stands with whatever the register call returned.
func (c *Client) Register(in RegisterInput) (*models.AuthResponse, error) {
	payload := map[string]string{
		"username": in.Username,
		"email":    in.Email,
		"password": in.Password,
	}
	res, err := c.sendJSON(http.MethodPost, c.BaseURL+"/api/auth/local/register", "", payload)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return nil, decodeError(res, "failed to register user")
	}

	var auth models.AuthResponse
	if err := json.NewDecoder(res.Body).Decode(&auth); err != nil {
		return nil, err
	}

	if (in.Name != "" || in.Phone != "") && auth.JWT != "" {
		c.completeProfile(&auth, in)
	}
	return &auth, nil
}

func (c *Client) completeProfile(auth *models.AuthResponse, in RegisterInput) {
	update := map[string]any{"account_status": models.AccountPending}
	if in.Name != "" {
		update["name"] = in.Name
	}
	if in.Phone != "" {
		update["phone"] = in.Phone
	}

	url := fmt.Sprintf("%s/api/users/%d", c.BaseURL, auth.User.ID)
	res, err := c.sendJSON(http.MethodPut, url, auth.JWT, update)
	if err != nil {
		return
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return
	}
	var updated models.User
	if err := json.NewDecoder(res.Body).Decode(&updated); err == nil && updated.ID != 0 {
		auth.User = updated
	}
}

// Login exchanges credentials for a token+user pair.
func (c *Client) Login(identifier, password string) (*models.AuthResponse, error) {
	payload := map[string]string{
		"identifier": identifier,
		"password":   password,
	}
	res, err := c.sendJSON(http.MethodPost, c.BaseURL+"/api/auth/local", "", payload)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return nil, decodeError(res, "failed to sign in")
	}

	var auth models.AuthResponse
	if err := json.NewDecoder(res.Body).Decode(&auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// CurrentUser fetches the profile for a bearer token.
func (c *Client) CurrentUser(token string) (*models.User, error) {
	return c.fetchMe(c.BaseURL+"/api/users/me", token)
}

// CurrentUserWithRole fetches the profile with the role relation populated,
// which the plain endpoint omits.
func (c *Client) CurrentUserWithRole(token string) (*models.User, error) {
	return c.fetchMe(c.BaseURL+"/api/users/me?populate=role", token)
}

func (c *Client) fetchMe(url, token string) (*models.User, error) {
	res, err := c.get(url, token)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return nil, decodeError(res, "failed to fetch current user")
	}

	var user models.User
	if err := json.NewDecoder(res.Body).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
