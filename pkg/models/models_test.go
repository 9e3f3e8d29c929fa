package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uddiwire/uddi/pkg/codec"
	"github.com/uddiwire/uddi/pkg/constants"
	"github.com/uddiwire/uddi/pkg/fault"
	"github.com/uddiwire/uddi/pkg/types"
)

func roundtrip[T types.Equaler[T]](c codec.Codec[T], v *T) func(t *testing.T) {
	return func(t *testing.T) {
		env := codec.NewEnv()
		parent := etree.NewElement("parent")
		c.Encode(env, v, parent)
		require.Len(t, parent.ChildElements(), 1)

		got, err := c.Decode(env, parent.ChildElements()[0])
		require.NoError(t, err)
		assert.True(t, (*got).Equal(*v), "roundtrip mismatch:\n got %+v\nwant %+v", *got, *v)
	}
}

func faulty[T any](c codec.Codec[T]) func(t *testing.T, el *etree.Element) {
	return func(t *testing.T, el *etree.Element) {
		got, err := c.Decode(codec.NewEnv(), el)
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, constants.ErrFault), "%s: got %v", c.Tag(), err)
	}
}

func fullKeyedReference() KeyedReference {
	return NewKeyedReference("uuid:TYPES", "types", "wsdlSpec")
}

func TestRoundtrip_every_entity(t *testing.T) {
	ref := fullKeyedReference()
	tm := fullTModel()
	second := fullTModel()
	second.Key = types.Some("uuid:Y")

	t.Run("name", roundtrip(NameCodec, NewLocalizedName("Widget", "en")))
	t.Run("description", roundtrip(DescriptionCodec, &Description{Text: types.Some("Desc"), Lang: types.Some("en")}))
	t.Run("overviewURL", roundtrip(OverviewURLCodec, NewOverviewURL("http://example.com")))
	t.Run("overviewDoc", roundtrip(OverviewDocCodec, tm.OverviewDoc))
	t.Run("keyedReference", roundtrip(KeyedReferenceCodec, &ref))
	t.Run("identifierBag", roundtrip(IdentifierBagCodec, tm.IdentifierBag))
	t.Run("categoryBag", roundtrip(CategoryBagCodec, tm.CategoryBag))
	t.Run("tModel", roundtrip(TModelCodec, tm))
	t.Run("publisherAssertion", roundtrip(PublisherAssertionCodec, NewPublisherAssertion("uuid:A", "uuid:B", ref)))
	t.Run("findQualifiers", roundtrip(FindQualifiersCodec, &FindQualifiers{Qualifiers: []string{"exactNameMatch", "sortByNameAsc"}}))
	t.Run("find_tModel", roundtrip(FindTModelCodec, &FindTModel{
		Generic:        types.Some("2.0"),
		MaxRows:        types.Some("10"),
		FindQualifiers: &FindQualifiers{Qualifiers: []string{"exactNameMatch"}},
		Name:           NewName("Widget"),
		IdentifierBag:  tm.IdentifierBag,
		CategoryBag:    tm.CategoryBag,
	}))
	t.Run("tModelInfo", roundtrip(TModelInfoCodec, &TModelInfo{Key: types.Some("uuid:X"), Name: NewName("W")}))
	t.Run("tModelList", roundtrip(TModelListCodec, &TModelList{
		Generic:   types.Some("2.0"),
		Operator:  types.Some("registry.example"),
		Truncated: types.Some("true"),
		TModelInfos: &TModelInfos{Infos: types.List[TModelInfo]{
			{Key: types.Some("uuid:X"), Name: NewName("W")},
			{Key: types.Some("uuid:Y"), Name: NewName("V")},
		}},
	}))
	t.Run("get_tModelDetail", roundtrip(GetTModelDetailCodec, &GetTModelDetail{
		Generic:    types.Some("2.0"),
		TModelKeys: []string{"uuid:X", "uuid:Y"},
	}))
	t.Run("tModelDetail", roundtrip(TModelDetailCodec, &TModelDetail{
		Generic:   types.Some("2.0"),
		Operator:  types.Some("registry.example"),
		Truncated: types.Some("false"),
		TModels:   types.List[TModel]{*tm, *second},
	}))
	t.Run("get_authToken", roundtrip(GetAuthTokenCodec, &GetAuthToken{
		Generic: types.Some("2.0"), UserID: types.Some("alice"), Cred: types.Some("secret"),
	}))
	t.Run("authToken", roundtrip(AuthTokenCodec, &AuthToken{
		Generic: types.Some("2.0"), Operator: types.Some("registry.example"), AuthInfo: types.Some("token"),
	}))
	t.Run("discard_authToken", roundtrip(DiscardAuthTokenCodec, &DiscardAuthToken{
		Generic: types.Some("2.0"), AuthInfo: types.Some("token"),
	}))
	t.Run("save_tModel", roundtrip(SaveTModelCodec, &SaveTModel{
		Generic: types.Some("2.0"), AuthInfo: types.Some("token"), TModels: types.List[TModel]{*tm},
	}))
	t.Run("delete_tModel", roundtrip(DeleteTModelCodec, &DeleteTModel{
		Generic: types.Some("2.0"), AuthInfo: types.Some("token"), TModelKeys: []string{"uuid:X"},
	}))
	t.Run("add_publisherAssertions", roundtrip(AddPublisherAssertionsCodec, &AddPublisherAssertions{
		Generic:             types.Some("2.0"),
		AuthInfo:            types.Some("token"),
		PublisherAssertions: types.List[PublisherAssertion]{*NewPublisherAssertion("uuid:A", "uuid:B", ref)},
	}))
	t.Run("dispositionReport", roundtrip(DispositionReportCodec, &DispositionReport{
		Generic:   types.Some("2.0"),
		Operator:  types.Some("registry.example"),
		Truncated: types.Some("false"),
		Results: types.List[Result]{{
			Errno:   types.Some("0"),
			KeyType: types.Some("tModelKey"),
			ErrInfo: &ErrInfo{ErrCode: types.Some("E_success"), Text: types.Some("ok")},
		}},
	}))
}

func TestFault_short_circuits_every_entity(t *testing.T) {
	decoders := map[string]func(t *testing.T, el *etree.Element){
		"name":                    faulty(NameCodec),
		"description":             faulty(DescriptionCodec),
		"overviewURL":             faulty(OverviewURLCodec),
		"overviewDoc":             faulty(OverviewDocCodec),
		"keyedReference":          faulty(KeyedReferenceCodec),
		"identifierBag":           faulty(IdentifierBagCodec),
		"categoryBag":             faulty(CategoryBagCodec),
		"tModel":                  faulty(TModelCodec),
		"publisherAssertion":      faulty(PublisherAssertionCodec),
		"find_tModel":             faulty(FindTModelCodec),
		"tModelList":              faulty(TModelListCodec),
		"get_tModelDetail":        faulty(GetTModelDetailCodec),
		"tModelDetail":            faulty(TModelDetailCodec),
		"authToken":               faulty(AuthTokenCodec),
		"save_tModel":             faulty(SaveTModelCodec),
		"delete_tModel":           faulty(DeleteTModelCodec),
		"add_publisherAssertions": faulty(AddPublisherAssertionsCodec),
		"dispositionReport":       faulty(DispositionReportCodec),
	}
	shapes := map[string]string{
		"soap fault": `<soap:Fault xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">` +
			`<faultcode>Server</faultcode><faultstring>down</faultstring></soap:Fault>`,
		"disposition report": `<u:dispositionReport ` + ns + `><u:result errno="10500">` +
			`<u:errInfo errCode="E_fatalError">boom</u:errInfo></u:result></u:dispositionReport>`,
	}

	for shape, xml := range shapes {
		for name, check := range decoders {
			t.Run(shape+"/"+name, func(t *testing.T) {
				check(t, parse(t, xml))
			})
		}
	}
}

func TestTModelDetail_nested_fault_aborts_whole_decode(t *testing.T) {
	el := parse(t, `<u:tModelDetail `+ns+` generic="2.0">`+
		`<u:tModel tModelKey="uuid:X"><u:name>ok</u:name></u:tModel>`+
		`<u:tModel tModelKey="uuid:Y"><u:overviewDoc><u:overviewURL>x</u:overviewURL></u:overviewDoc></u:tModel>`+
		`</u:tModelDetail>`)

	env := codec.NewEnv(codec.WithDetector(urlFaults{}))
	detail, err := TModelDetailCodec.Decode(env, el)
	assert.Nil(t, detail)
	assert.True(t, errors.Is(err, constants.ErrFault))
}

func TestMessages_carry_generic(t *testing.T) {
	got := encodeString(t, GetTModelDetailCodec, NewGetTModelDetail("uuid:A", "uuid:B"))
	assert.Equal(t, `<u:get_tModelDetail `+ns+` generic="2.0">`+
		`<u:tModelKey>uuid:A</u:tModelKey><u:tModelKey>uuid:B</u:tModelKey>`+
		`</u:get_tModelDetail>`, got)

	got = encodeString(t, SaveTModelCodec, NewSaveTModel("token", *NewTModel("", "New")))
	assert.Equal(t, `<u:save_tModel `+ns+` generic="2.0">`+
		`<u:authInfo>token</u:authInfo>`+
		`<u:tModel><u:name>New</u:name></u:tModel>`+
		`</u:save_tModel>`, got)
}

func TestPublisherAssertion_encode(t *testing.T) {
	got := encodeString(t, PublisherAssertionCodec,
		NewPublisherAssertion("uuid:A", "uuid:B", NewKeyedReference("uuid:REL", "", "peer-peer")))
	assert.Equal(t, `<u:publisherAssertion `+ns+`>`+
		`<u:fromKey>uuid:A</u:fromKey><u:toKey>uuid:B</u:toKey>`+
		`<u:keyedReference tModelKey="uuid:REL" keyValue="peer-peer"/>`+
		`</u:publisherAssertion>`, got)
}

func TestKeyedReference_keyName_convention(t *testing.T) {
	ref, err := KeyedReferenceCodec.Decode(codec.NewEnv(), parse(t, `<u:keyedReference `+ns+`/>`))
	require.NoError(t, err)
	assert.Equal(t, types.Some(""), ref.TModelKey)
	assert.Equal(t, types.None(), ref.KeyName, "only a keyName present in the document is decoded")
	assert.Equal(t, types.Some(""), ref.KeyValue)

	ref, err = KeyedReferenceCodec.Decode(codec.NewEnv(), parse(t, `<u:keyedReference `+ns+` keyName=""/>`))
	require.NoError(t, err)
	assert.Equal(t, types.Some(""), ref.KeyName)
}

func TestTModelDetail_Lookup(t *testing.T) {
	d := &TModelDetail{TModels: types.List[TModel]{*NewTModel("uuid:X", "X"), *NewTModel("uuid:Y", "Y")}}

	tm, ok := d.Lookup("uuid:Y")
	require.True(t, ok)
	assert.Equal(t, "Y", tm.NameText())

	_, ok = d.Lookup("uuid:Z")
	assert.False(t, ok)
}

func TestDispositionReport_Success(t *testing.T) {
	assert.True(t, NewSuccessReport("op").Success())
	report := &DispositionReport{Results: types.List[Result]{{Errno: types.Some("10500")}}}
	assert.False(t, report.Success())
}

func TestNewKey(t *testing.T) {
	key, err := NewKey()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "uuid:"))
	assert.Equal(t, strings.ToUpper(key[5:]), key[5:])
	assert.True(t, IsKey(key))

	other, err := NewKey()
	require.NoError(t, err)
	assert.NotEqual(t, key, other)

	assert.False(t, IsKey("uuid:not-a-uuid"))
	assert.False(t, IsKey("UUID:X"))
}

// urlFaults treats every overviewURL as fault-shaped.
type urlFaults struct{}

func (urlFaults) IsFault(el *etree.Element) bool { return el.Tag == "overviewURL" }

func (urlFaults) Detail(*etree.Element) *fault.Detail { return &fault.Detail{Code: "url"} }
