package patch

import (
	"errors"
	"testing"

	"github.com/signadot/go-pandoc/ast"
	"github.com/signadot/go-pandoc/parse"
)

func doc() *ast.Document {
	d := ast.NewDocument(
		&ast.Para{Inlines: ast.Words("hello world")},
		&ast.HorizontalRule{},
	)
	d.Meta["title"] = &ast.MetaString{Text: "Old"}
	return d
}

func TestApply(t *testing.T) {
	ops := `[
		{"op":"replace","path":"/blocks/0/c/2/c","value":"there"},
		{"op":"remove","path":"/blocks/1"},
		{"op":"add","path":"/blocks/-","value":{"t":"Null"}}
	]`
	orig := doc()
	got, err := Apply(orig, []byte(ops))
	if err != nil {
		t.Fatal(err)
	}
	want := ast.NewDocument(&ast.Para{Inlines: ast.Words("hello there")}, &ast.Null{})
	want.Meta["title"] = &ast.MetaString{Text: "Old"}
	if !ast.Equal(got, want) {
		t.Errorf("mismatch:\n%s", ast.Diff(want, got))
	}
	if !ast.Equal(orig, doc()) {
		t.Error("input was modified")
	}
}

func TestApplyErrors(t *testing.T) {
	if _, err := Apply(doc(), []byte(`{"op":1}`)); !errors.Is(err, ErrPatch) {
		t.Errorf("expected ErrPatch for malformed patch, got %v", err)
	}
	if _, err := Apply(doc(), []byte(`[{"op":"remove","path":"/blocks/9"}]`)); !errors.Is(err, ErrPatch) {
		t.Errorf("expected ErrPatch for bad path, got %v", err)
	}
	_, err := Apply(doc(), []byte(`[{"op":"replace","path":"/blocks/1/t","value":"Bogus"}]`))
	if !errors.Is(err, parse.ErrTag) {
		t.Errorf("expected tag error, got %v", err)
	}
	_, err = Apply(doc(), []byte(`[{"op":"replace","path":"/pandoc-api-version/1","value":24}]`))
	if !errors.Is(err, parse.ErrVersion) {
		t.Errorf("expected version error, got %v", err)
	}
}

func TestMerge(t *testing.T) {
	got, err := Merge(doc(), []byte(`{"meta":{"title":{"t":"MetaBool","c":true},"draft":{"t":"MetaBool","c":false}}}`))
	if err != nil {
		t.Fatal(err)
	}
	want := doc()
	want.Meta["title"] = &ast.MetaBool{Value: true}
	want.Meta["draft"] = &ast.MetaBool{Value: false}
	if !ast.Equal(got, want) {
		t.Errorf("mismatch:\n%s", ast.Diff(want, got))
	}

	got, err = Merge(doc(), []byte(`{"meta":{"title":null}}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.Meta["title"]; ok {
		t.Error("expected title removed")
	}
}

func TestCreateMerge(t *testing.T) {
	from := doc()
	to := doc()
	to.Blocks = to.Blocks[:1]
	to.Meta["author"] = &ast.MetaString{Text: "A"}
	mp, err := CreateMerge(from, to)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Merge(from, mp)
	if err != nil {
		t.Fatal(err)
	}
	if !ast.Equal(got, to) {
		t.Errorf("mismatch:\n%s", ast.Diff(to, got))
	}

	mp, err = CreateMerge(from, doc())
	if err != nil {
		t.Fatal(err)
	}
	if string(mp) != "{}" {
		t.Errorf("expected empty merge patch, got %s", mp)
	}
}
