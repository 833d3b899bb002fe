package serverseeker_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/steviee/serverseeker/internal/serverseeker"
)

// Example demonstrates basic usage of the ServerSeeker client.
func Example() {
	client := serverseeker.NewClient("your-api-key", nil)
	ctx := context.Background()

	online := serverseeker.AtLeast(5)
	servers, err := client.Servers(ctx, &serverseeker.ServerFilter{
		OnlinePlayers: &online,
		Software:      serverseeker.SoftwarePaper,
		CountryCode:   "DE",
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, s := range servers {
		fmt.Printf("%s %s (%d/%d)\n", s.Server, s.Version, s.OnlinePlayers, s.MaxPlayers)
	}
}

// ExampleClient_WhereIs shows how to look up a player and handle rate limits.
func ExampleClient_WhereIs() {
	client := serverseeker.NewClient("your-api-key", nil)

	sightings, err := client.WhereIs(context.Background(), serverseeker.ByName, "Notch")
	if errors.Is(err, serverseeker.ErrRateLimitExceeded) {
		log.Fatal("daily whereis quota used up")
	}
	if err != nil {
		log.Fatal(err)
	}

	for _, s := range sightings {
		fmt.Printf("%s seen on %s at %s\n", s.Name, s.Server, s.LastSeenTime())
	}
}
