package encounters

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/rpg-casino/internal/entities"
	"github.com/KirkDiggler/rpg-casino/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-casino/internal/redis"
)

// CorruptEncounter is a stored encounter that cannot be played
type CorruptEncounter struct {
	Key    string
	Reason string
}

// ScanOutput reports the result of a corruption scan
type ScanOutput struct {
	Checked int
	Corrupt []CorruptEncounter
}

// FindCorrupted scans every stored encounter and reports the ones whose JSON
// does not decode or whose dice state fails validation
func FindCorrupted(ctx context.Context, client redisclient.Client) (*ScanOutput, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client is required")
	}

	output := &ScanOutput{}
	iter := client.Scan(ctx, 0, encounterKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		output.Checked++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			// expired between SCAN and GET
			continue
		}

		var encounter entities.Encounter
		if err := json.Unmarshal(data, &encounter); err != nil {
			output.Corrupt = append(output.Corrupt, CorruptEncounter{Key: key, Reason: "invalid JSON"})
			continue
		}
		if encounter.ID == "" || key != encounterKeyPrefix+encounter.ID {
			output.Corrupt = append(output.Corrupt, CorruptEncounter{Key: key, Reason: "id does not match key"})
			continue
		}
		if err := encounter.Engine.Validate(); err != nil {
			output.Corrupt = append(output.Corrupt, CorruptEncounter{Key: key, Reason: errors.GetMessage(err)})
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan encounters")
	}

	return output, nil
}

// DeleteKeys removes the given raw keys and returns how many existed
func DeleteKeys(ctx context.Context, client redisclient.Client, keys []string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	deleted, err := client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete encounters")
	}
	return deleted, nil
}
