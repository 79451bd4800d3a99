package output

import (
	"encoding/json"
	"os"

	"security-maturity-assessor/internal/model"
)

func WriteJSON(path string, a *model.Assessment) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}
