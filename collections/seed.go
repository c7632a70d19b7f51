package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog/log"
)

// ── Definition structs ───────────────────────────────────────────────────

type storeDef struct {
	serialNo    string
	name        string
	distributor string // key into distributorDefs
	address     string
	phone       string
	gps         string
	boardType   string
	boardSize   string
	quantity    string
	rate        string
	beforeImage string
	afterImage  string
}

type distributorDef struct {
	key    string
	name   string
	city   string
	brands []string // brand names
}

var brandNames = []string{"Asian Paints", "Berger Paints"}

var distributorDefs = []distributorDef{
	{key: "shree", name: "Shree Ganesh Traders", city: "Pune", brands: []string{"Asian Paints", "Berger Paints"}},
	{key: "om", name: "Om Sai Distributors", city: "Nashik", brands: []string{"Asian Paints"}},
	{key: "kaveri", name: "Kaveri Agencies", city: "Mysuru", brands: []string{"Berger Paints"}},
}

var storeDefs = []storeDef{
	{
		serialNo: "1", name: "Mahalaxmi Hardware", distributor: "shree",
		address: "Shop 4, FC Road, Pune 411004", phone: "9822012345",
		gps: "Mahalaxmi Hardware|18.5204|73.8567", boardType: "Flex",
		boardSize: "24x36", quantity: "2", rate: "100",
		beforeImage: "stores/1/before.jpg", afterImage: "stores/1/after.jpg",
	},
	{
		serialNo: "2", name: "Patil Paint House", distributor: "shree",
		address: "Main Bazaar, Hadapsar, Pune 411028", phone: "9822054321",
		gps: "Patil Paint House|18.5089|73.9260", boardType: "ACP",
		boardSize: "36x120", quantity: "1", rate: "145.5",
		beforeImage: "stores/2/before.jpg",
	},
	{
		serialNo: "10", name: "Sai Colour World", distributor: "shree",
		address: "Station Road, Pimpri, Pune 411018", phone: "9890011122",
		boardType: "Glow Sign", boardSize: "30x96", quantity: "1", rate: "",
		beforeImage: "stores/10/before.jpg",
	},
	{
		serialNo: "3", name: "Godavari Traders", distributor: "om",
		address: "College Road, Nashik 422005", phone: "9970033344",
		gps: "Godavari Traders|19.9975", boardType: "Flex",
		boardSize: "48x72", quantity: "3", rate: "90",
		beforeImage: "stores/3/before.jpg", afterImage: "stores/3/after.jpg",
	},
	{
		serialNo: "1", name: "Chamundi Paints", distributor: "kaveri",
		address: "Sayyaji Rao Road, Mysuru 570001", phone: "9845012345",
		gps: "Chamundi Paints|12.3051|76.6551", boardType: "ACP",
		boardSize: "24x48", quantity: "2", rate: "120",
		beforeImage: "stores/k1/before.jpg",
	},
}

// Seed populates the branding collections with a demo vendor network. It is
// safe to call on every startup because it returns early if any vendor
// records already exist.
func Seed(app *pocketbase.PocketBase) error {
	vendorsCol, err := app.FindCollectionByNameOrId("vendors")
	if err != nil {
		return fmt.Errorf("seed: could not find vendors collection: %w", err)
	}
	existing, err := app.FindAllRecords(vendorsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query vendors: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Info().Msg("seed: vendors collection is empty, inserting demo data")

	brandsCol, err := app.FindCollectionByNameOrId("brands")
	if err != nil {
		return fmt.Errorf("seed: could not find brands collection: %w", err)
	}
	distributorsCol, err := app.FindCollectionByNameOrId("distributors")
	if err != nil {
		return fmt.Errorf("seed: could not find distributors collection: %w", err)
	}
	storesCol, err := app.FindCollectionByNameOrId("stores")
	if err != nil {
		return fmt.Errorf("seed: could not find stores collection: %w", err)
	}

	vendor := core.NewRecord(vendorsCol)
	vendor.Set("name", "Brightline Signage")
	vendor.Set("contact_name", "Rahul Deshmukh")
	vendor.Set("phone", "9823098230")
	vendor.Set("email", "ops@brightline.example")
	vendor.Set("city", "Pune")
	if err := app.Save(vendor); err != nil {
		return fmt.Errorf("seed: save vendor: %w", err)
	}

	brandIDs := make(map[string]string, len(brandNames))
	for _, name := range brandNames {
		r := core.NewRecord(brandsCol)
		r.Set("name", name)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save brand %q: %w", name, err)
		}
		brandIDs[name] = r.Id
	}

	type distInfo struct {
		id     string
		brands []string
	}
	dists := make(map[string]distInfo, len(distributorDefs))
	for _, d := range distributorDefs {
		var ids []string
		for _, b := range d.brands {
			ids = append(ids, brandIDs[b])
		}
		r := core.NewRecord(distributorsCol)
		r.Set("name", d.name)
		r.Set("city", d.city)
		r.Set("brands", ids)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save distributor %q: %w", d.name, err)
		}
		dists[d.key] = distInfo{id: r.Id, brands: ids}
	}

	for _, s := range storeDefs {
		d := dists[s.distributor]
		r := core.NewRecord(storesCol)
		r.Set("vendor", vendor.Id)
		r.Set("brand", d.brands[0])
		r.Set("distributor", d.id)
		r.Set("serial_no", s.serialNo)
		r.Set("name", s.name)
		r.Set("address", s.address)
		r.Set("phone", s.phone)
		r.Set("gps", s.gps)
		r.Set("board_type", s.boardType)
		r.Set("board_size", s.boardSize)
		r.Set("quantity", s.quantity)
		r.Set("rate", s.rate)
		r.Set("before_image", s.beforeImage)
		r.Set("after_image", s.afterImage)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save store %q: %w", s.name, err)
		}
	}

	log.Info().
		Int("brands", len(brandNames)).
		Int("distributors", len(distributorDefs)).
		Int("stores", len(storeDefs)).
		Msg("seed: done")
	return nil
}
