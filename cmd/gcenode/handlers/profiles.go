package handlers

import (
	"context"
	"fmt"
)

// Profiles handles the profiles command. Deprecated machine types are
// filtered out by the manager.
func Profiles(ctx context.Context, configPath string) error {
	_, api, err := setup(ctx, configPath)
	if err != nil {
		return err
	}

	profiles, err := newManager(api).ListHardwareProfiles(ctx)
	if err != nil {
		return err
	}

	for _, profile := range profiles {
		fmt.Printf("%s\t%s\n", profile.Zone, profile.Name)
	}
	return nil
}
