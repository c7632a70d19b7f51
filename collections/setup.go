package collections

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog/log"
)

// payloadMax bounds the base64 artifact fields on approvals.
const payloadMax = 50 << 20

// Setup programmatically creates/ensures the vendors, brands, distributors,
// stores and approvals collections exist.
func Setup(app *pocketbase.PocketBase) {
	vendors := ensureCollection(app, "vendors", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "contact_name"})
		c.Fields.Add(&core.TextField{Name: "phone"})
		c.Fields.Add(&core.TextField{Name: "email"})
		c.Fields.Add(&core.TextField{Name: "city"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	brands := ensureCollection(app, "brands", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	distributors := ensureCollection(app, "distributors", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "city"})
		c.Fields.Add(&core.RelationField{
			Name:         "brands",
			CollectionId: brands.Id,
			MaxSelect:    100,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	stores := ensureCollection(app, "stores", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "vendor",
			Required:      true,
			CollectionId:  vendors.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "brand",
			Required:     true,
			CollectionId: brands.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "distributor",
			Required:     true,
			CollectionId: distributors.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "serial_no"})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "address"})
		c.Fields.Add(&core.TextField{Name: "phone"})
		c.Fields.Add(&core.TextField{Name: "gps"})
		c.Fields.Add(&core.TextField{Name: "board_type"})
		c.Fields.Add(&core.TextField{Name: "board_size"})
		// quantity and rate stay text: survey data is not validated.
		c.Fields.Add(&core.TextField{Name: "quantity"})
		c.Fields.Add(&core.TextField{Name: "rate"})
		c.Fields.Add(&core.TextField{Name: "before_image"})
		c.Fields.Add(&core.TextField{Name: "after_image"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "approvals", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "request_id"})
		c.Fields.Add(&core.RelationField{
			Name:          "vendor",
			Required:      true,
			CollectionId:  vendors.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "brand",
			Required:     true,
			CollectionId: brands.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "distributor",
			Required:     true,
			CollectionId: distributors.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "store",
			CollectionId: stores.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "approval_type",
			Required:  true,
			Values:    []string{"Before", "After"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"submitted", "pending", "approved", "rejected"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "pdf_payload", Max: payloadMax})
		c.Fields.Add(&core.TextField{Name: "excel_payload", Max: payloadMax})
		c.Fields.Add(&core.TextField{Name: "brand_name"})
		c.Fields.Add(&core.TextField{Name: "distributor_name"})
		c.Fields.Add(&core.TextField{Name: "submitted_by"})
		c.Fields.Add(&core.TextField{Name: "comments"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Debug().Str("collection", name).Msg("collection already exists, skipping creation")
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatal().Err(err).Str("collection", name).Msg("failed to create collection")
	}

	log.Info().Str("collection", name).Str("id", collection.Id).Msg("created collection")
	return collection
}
