package toon

// encode renders v to TOON text (spec §4.1-§4.4, §4.6 in reverse).
// opts has already had defaults applied (getEncodeOptions).
func encode(v Value, opts *EncodeOptions) (string, error) {
	w := newWriter()

	switch v.Kind() {
	case KindList:
		items, _ := v.List()
		if len(items) == 0 {
			w.push(emptyListMarker, 0)
			return w.String(), nil
		}
		if detectArrayFormat(items) == arrayFormatTabular {
			if err := encodeTabularList(w, items, 0, opts); err != nil {
				return "", err
			}
		} else if err := encodeListBody(w, items, 0, opts); err != nil {
			return "", err
		}
	case KindMap:
		om, _ := v.Map()
		if om.Len() == 0 {
			w.push(emptyMapMarker, 0)
			return w.String(), nil
		}
		if err := encodeMapBody(w, om, 0, opts); err != nil {
			return "", err
		}
	default:
		w.push(encodePrimitive(v, opts.Delimiter), 0)
	}

	return w.String(), nil
}

// detectArrayFormat decides between the empty, tabular, and plain list
// layouts (spec §4.3-§4.4): tabular requires every element to be a
// non-empty Map sharing the exact same key set, with every value a
// primitive.
func detectArrayFormat(items []Value) arrayFormat {
	if len(items) == 0 {
		return arrayFormatEmpty
	}

	first, ok := items[0].Map()
	if !ok || first.Len() == 0 {
		return arrayFormatList
	}
	keys := first.Keys()

	for _, item := range items {
		m, ok := item.Map()
		if !ok || !sameKeySet(first, m) {
			return arrayFormatList
		}
		for _, k := range keys {
			val, _ := m.Get(k)
			if !val.isPrimitive() {
				return arrayFormatList
			}
		}
	}

	return arrayFormatTabular
}

// encodeMapBody writes each key of om as its own line(s) at depth,
// recursing into nested lists/maps per spec §4.3.
func encodeMapBody(w *writer, om *OrderedMap, depth int, opts *EncodeOptions) error {
	for _, key := range om.Keys() {
		val, _ := om.Get(key)
		encodedKey := encodeKey(key, opts.Delimiter)

		switch val.Kind() {
		case KindList:
			items, _ := val.List()
			if len(items) == 0 {
				w.pushKeyValue(encodedKey, emptyListMarker, depth)
				continue
			}
			w.pushKeyOnly(encodedKey, depth)
			if detectArrayFormat(items) == arrayFormatTabular {
				if err := encodeTabularList(w, items, depth+1, opts); err != nil {
					return err
				}
			} else if err := encodeListBody(w, items, depth+1, opts); err != nil {
				return err
			}
		case KindMap:
			nested, _ := val.Map()
			if nested.Len() == 0 {
				w.pushKeyValue(encodedKey, emptyMapMarker, depth)
				continue
			}
			w.pushKeyOnly(encodedKey, depth)
			if err := encodeMapBody(w, nested, depth+1, opts); err != nil {
				return err
			}
		default:
			w.pushKeyValue(encodedKey, encodePrimitive(val, opts.Delimiter), depth)
		}
	}
	return nil
}

// encodeListBody writes items, one per "- " line at depth, recursing
// into nested containers. Callers have already ruled out the empty
// and tabular cases.
func encodeListBody(w *writer, items []Value, depth int, opts *EncodeOptions) error {
	for _, item := range items {
		switch item.Kind() {
		case KindList:
			nested, _ := item.List()
			if len(nested) == 0 {
				w.pushListItem(emptyListMarker, depth)
				continue
			}
			w.pushListItemBare(depth)
			if detectArrayFormat(nested) == arrayFormatTabular {
				if err := encodeTabularList(w, nested, depth+1, opts); err != nil {
					return err
				}
			} else if err := encodeListBody(w, nested, depth+1, opts); err != nil {
				return err
			}
		case KindMap:
			om, _ := item.Map()
			if om.Len() == 0 {
				w.pushListItem(emptyMapMarker, depth)
				continue
			}
			w.pushListItemBare(depth)
			if err := encodeMapBody(w, om, depth+1, opts); err != nil {
				return err
			}
		default:
			w.pushListItem(encodePrimitive(item, opts.Delimiter), depth)
		}
	}
	return nil
}

// encodeTabularList writes a "@D K1DK2..." header and one "- V1DV2..."
// row per item (spec §4.4). Callers guarantee items is non-empty and
// every element is a uniform-keyed Map of primitives.
func encodeTabularList(w *writer, items []Value, depth int, opts *EncodeOptions) error {
	first, _ := items[0].Map()
	keys := first.Keys()

	encodedKeys := make([]string, len(keys))
	for i, k := range keys {
		encodedKeys[i] = encodeKey(k, opts.Delimiter)
	}
	w.pushTabularHeader(opts.Delimiter, encodedKeys, depth)

	for _, item := range items {
		om, _ := item.Map()
		row := make([]string, len(keys))
		for i, k := range keys {
			val, _ := om.Get(k)
			row[i] = encodePrimitive(val, opts.Delimiter)
		}
		w.pushTabularRow(opts.Delimiter, row, depth)
	}
	return nil
}
