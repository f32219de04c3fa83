package discord

import "cordcore/pkg/codec"

// AvatarDecoration is the cosmetic frame rendered over a user's avatar. Its
// wire form carries no library-internal fields, so it serializes through the
// single-argument codec.Serializable shape.
type AvatarDecoration struct {
	Asset string
	SKUID Snowflake
}

var (
	fieldDecorationAsset = codec.ForceString("asset")
	fieldDecorationSKUID = codec.OptionalEntityID[Snowflake]("sku_id")
)

// AvatarDecorationFromData builds a decoration from its wire payload.
func AvatarDecorationFromData(data codec.Payload) *AvatarDecoration {
	return &AvatarDecoration{
		Asset: fieldDecorationAsset.Parse(data),
		SKUID: fieldDecorationSKUID.Parse(data),
	}
}

// ToData serializes the decoration.
func (d *AvatarDecoration) ToData(defaults bool) codec.Payload {
	data := codec.Payload{}
	data = fieldDecorationAsset.Put(d.Asset, data, defaults)
	data = fieldDecorationSKUID.Put(d.SKUID, data, defaults)
	return data
}

// Copy returns an independent copy, nil for nil.
func (d *AvatarDecoration) Copy() *AvatarDecoration {
	if d == nil {
		return nil
	}
	copied := *d
	return &copied
}

// Equal reports structural equality, treating nil as equal to nil only.
func (d *AvatarDecoration) Equal(other *AvatarDecoration) bool {
	if d == nil || other == nil {
		return d == other
	}
	return *d == *other
}

// Hash folds the decoration into an entity hash term.
func (d *AvatarDecoration) Hash() uint64 {
	if d == nil {
		return 0
	}
	return hashString(d.Asset) ^ uint64(d.SKUID)
}
