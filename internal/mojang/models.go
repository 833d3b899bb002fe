package mojang

import "github.com/google/uuid"

// profileResponse is the body of GET /users/profiles/minecraft/<name>.
// The id is the account UUID without dashes.
type profileResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Profile is a Minecraft Java account: its current name and permanent UUID.
type Profile struct {
	Name string    `json:"name"`
	UUID uuid.UUID `json:"uuid"`
}
