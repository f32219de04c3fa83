package codec

import "slices"

// EntityPutFunc writes an entity-valued field, forwarding the
// includeInternals choice of the enclosing schema to the nested entity.
type EntityPutFunc[E any] func(value E, data Payload, defaults, includeInternals bool) Payload

// Constraints for entity-valued fields. Embedding comparable keeps the
// nil/default sentinel checks allocation-free.
type serializableEntity interface {
	comparable
	Serializable
}

type internalSerializableEntity interface {
	comparable
	InternalSerializable
}

// PutEntity returns a putter that always serializes the entity in place.
// The entity's wire form carries no internal fields; nothing is forwarded.
func PutEntity[E Serializable](key string) EntityPutFunc[E] {
	return func(value E, data Payload, defaults, includeInternals bool) Payload {
		data[key] = value.ToData(defaults)
		return data
	}
}

// PutInternalEntity returns a putter that always serializes the entity in
// place, forwarding includeInternals.
func PutInternalEntity[E InternalSerializable](key string) EntityPutFunc[E] {
	return func(value E, data Payload, defaults, includeInternals bool) Payload {
		data[key] = value.ToData(defaults, includeInternals)
		return data
	}
}

// PutDefaultEntity returns a putter that writes null for the given default
// entity, typically a nil pointer or a zero sentinel instance, and
// serializes every other value.
func PutDefaultEntity[E serializableEntity](key string, def E) EntityPutFunc[E] {
	return func(value E, data Payload, defaults, includeInternals bool) Payload {
		if value == def {
			data[key] = nil
		} else {
			data[key] = value.ToData(defaults)
		}
		return data
	}
}

// PutDefaultInternalEntity is PutDefaultEntity for entities whose wire form
// distinguishes internal fields.
func PutDefaultInternalEntity[E internalSerializableEntity](key string, def E) EntityPutFunc[E] {
	return func(value E, data Payload, defaults, includeInternals bool) Payload {
		if value == def {
			data[key] = nil
		} else {
			data[key] = value.ToData(defaults, includeInternals)
		}
		return data
	}
}

// PutNullableEntity returns a putter treating the type's zero value, for
// pointer entities nil, as null.
func PutNullableEntity[E serializableEntity](key string) EntityPutFunc[E] {
	var zero E
	return PutDefaultEntity[E](key, zero)
}

// PutNullableInternalEntity is PutNullableEntity for entities whose wire
// form distinguishes internal fields.
func PutNullableInternalEntity[E internalSerializableEntity](key string) EntityPutFunc[E] {
	var zero E
	return PutDefaultInternalEntity[E](key, zero)
}

// PutOptionalEntity returns a putter that skips the type's zero value
// entirely unless defaults is set, writing null then.
func PutOptionalEntity[E serializableEntity](key string) EntityPutFunc[E] {
	var zero E
	return func(value E, data Payload, defaults, includeInternals bool) Payload {
		if value == zero {
			if defaults {
				data[key] = nil
			}
			return data
		}
		data[key] = value.ToData(defaults)
		return data
	}
}

// PutOptionalInternalEntity is PutOptionalEntity for entities whose wire
// form distinguishes internal fields.
func PutOptionalInternalEntity[E internalSerializableEntity](key string) EntityPutFunc[E] {
	var zero E
	return func(value E, data Payload, defaults, includeInternals bool) Payload {
		if value == zero {
			if defaults {
				data[key] = nil
			}
			return data
		}
		data[key] = value.ToData(defaults, includeInternals)
		return data
	}
}

// PutInternalEntityArray returns a putter serializing each element in
// order. A nil slice is written as an empty array when the key is emitted;
// the key is skipped entirely when the slice is nil and defaults is unset.
func PutInternalEntityArray[E InternalSerializable](key string) EntityPutFunc[[]E] {
	return func(value []E, data Payload, defaults, includeInternals bool) Payload {
		if defaults || value != nil {
			out := make([]Payload, len(value))
			for i, entity := range value {
				out[i] = entity.ToData(defaults, includeInternals)
			}
			data[key] = out
		}
		return data
	}
}

// PutInternalEntityDictionary returns a putter serializing the values of an
// id-keyed map as an array ordered by id. Keyed collections always reach the
// wire, a nil map as an empty array. When forceInternals is set the nested
// entities are serialized with their internal fields regardless of what the
// enclosing schema was asked for.
func PutInternalEntityDictionary[ID ~uint64, E InternalSerializable](key string, forceInternals bool) EntityPutFunc[map[ID]E] {
	return func(value map[ID]E, data Payload, defaults, includeInternals bool) Payload {
		if forceInternals {
			includeInternals = true
		}
		ids := make([]ID, 0, len(value))
		for id := range value {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		out := make([]Payload, len(ids))
		for i, id := range ids {
			out[i] = value[id].ToData(defaults, includeInternals)
		}
		data[key] = out
		return data
	}
}

// EntityDictionaryValidator returns a validator building an id-keyed map
// from a map, a slice of entities or nil.
func EntityDictionaryValidator[ID ~uint64, E Identifiable](name string) ValidateFunc[map[ID]E] {
	return func(value any) (map[ID]E, error) {
		switch v := value.(type) {
		case nil:
			return nil, nil
		case map[ID]E:
			if len(v) == 0 {
				return nil, nil
			}
			out := make(map[ID]E, len(v))
			for id, entity := range v {
				out[id] = entity
			}
			return out, nil
		case []E:
			if len(v) == 0 {
				return nil, nil
			}
			out := make(map[ID]E, len(v))
			for _, entity := range v {
				out[ID(entity.RawID())] = entity
			}
			return out, nil
		case []any:
			if len(v) == 0 {
				return nil, nil
			}
			out := make(map[ID]E, len(v))
			for _, raw := range v {
				entity, ok := raw.(E)
				if !ok {
					return nil, typeErr(name, "a collection of entities", raw)
				}
				out[ID(entity.RawID())] = entity
			}
			return out, nil
		default:
			return nil, typeErr(name, "a collection of entities or nil", value)
		}
	}
}

// PutEntityArray is PutInternalEntityArray for entities without internal
// fields.
func PutEntityArray[E Serializable](key string) EntityPutFunc[[]E] {
	return func(value []E, data Payload, defaults, includeInternals bool) Payload {
		if defaults || value != nil {
			out := make([]Payload, len(value))
			for i, entity := range value {
				out[i] = entity.ToData(defaults)
			}
			data[key] = out
		}
		return data
	}
}
