package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

// Dumps store records as a table. Keys follow the "namespace:identifier"
// layout, values are JSON documents.
func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	prefix := flag.String("prefix", "project:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Namespace", "Name", "Owner", "Members", "Version"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			// Secondary indexes hold raw identifiers, not documents.
			if strings.HasPrefix(key, "idx:") {
				continue
			}

			err := item.Value(func(v []byte) error {
				var doc map[string]any
				if err := json.Unmarshal(v, &doc); err != nil {
					color.Yellow.Printf("Error unmarshaling key %s: %v\n", key, err)
					return nil
				}

				namespace, _, _ := strings.Cut(key, ":")
				table.Append([]string{
					key,
					namespace,
					asString(doc, "name", "project_name", "username"),
					asString(doc, "owner"),
					membersOf(doc),
					fmt.Sprintf("%v", doc["version"]),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.ERROR)
	return badger.Open(opts)
}

// asString returns the first present field among the candidates.
func asString(doc map[string]any, fields ...string) string {
	for _, field := range fields {
		if v, ok := doc[field].(string); ok && v != "" {
			return v
		}
	}
	return "-"
}

func membersOf(doc map[string]any) string {
	raw, ok := doc["members"].([]any)
	if !ok {
		return "-"
	}

	var names []string
	for _, m := range raw {
		switch member := m.(type) {
		case string:
			names = append(names, member)
		case map[string]any:
			if name, ok := member["name"].(string); ok {
				names = append(names, name)
			}
		}
	}
	return strings.Join(names, ",")
}
