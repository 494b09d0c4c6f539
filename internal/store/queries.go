package store

// SQL query constants. PostgresStore methods reference these.

// Offer mapping queries.
const (
	queryListOfferMappings = `
		SELECT item_name, offer_id
		FROM offer_mappings
		WHERE vendor = $1
		ORDER BY item_name, created_at, offer_id`

	queryUpsertOfferMapping = `
		INSERT INTO offer_mappings (vendor, item_name, offer_id)
		VALUES (@vendor, @item_name, @offer_id)
		ON CONFLICT (vendor, item_name, offer_id) DO NOTHING`

	queryDeleteOfferMappings = `
		DELETE FROM offer_mappings
		WHERE vendor = $1 AND item_name = $2`
)
