package meta

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/go-pandoc/ast"
)

func TestFromYAML(t *testing.T) {
	y := `
title: A Title
draft: false
version: 3
ratio: 0.5
empty:
tags: [go, pandoc]
author:
  - name: Ann
    affiliation: Lab
`
	got, err := FromYAML([]byte(y))
	if err != nil {
		t.Fatal(err)
	}
	want := ast.Meta{
		"title":   &ast.MetaString{Text: "A Title"},
		"draft":   &ast.MetaBool{Value: false},
		"version": &ast.MetaString{Text: "3"},
		"ratio":   &ast.MetaString{Text: "0.5"},
		"empty":   &ast.MetaString{},
		"tags": &ast.MetaList{Items: []ast.MetaValue{
			&ast.MetaString{Text: "go"}, &ast.MetaString{Text: "pandoc"},
		}},
		"author": &ast.MetaList{Items: []ast.MetaValue{
			&ast.MetaMap{Map: ast.Meta{
				"name":        &ast.MetaString{Text: "Ann"},
				"affiliation": &ast.MetaString{Text: "Lab"},
			}},
		}},
	}
	if !ast.Equal(got, want) {
		t.Errorf("mismatch:\n%s", ast.Diff(want, got))
	}
}

func TestFromYAMLErrors(t *testing.T) {
	if _, err := FromYAML([]byte("- a\n- b\n")); !errors.Is(err, ErrMeta) {
		t.Errorf("expected ErrMeta for sequence, got %v", err)
	}
	if _, err := FromYAML([]byte("a: [\n")); !errors.Is(err, ErrMeta) {
		t.Errorf("expected ErrMeta for bad yaml, got %v", err)
	}
	m, err := FromYAML(nil)
	if err != nil || len(m) != 0 {
		t.Errorf("expected empty metadata, got %v %v", m, err)
	}
}

func TestToYAML(t *testing.T) {
	m := ast.Meta{
		"title":  &ast.MetaInlines{Inlines: ast.Words("My Doc")},
		"draft":  &ast.MetaBool{Value: true},
		"tags":   &ast.MetaList{Items: []ast.MetaValue{&ast.MetaString{Text: "x"}}},
		"nested": &ast.MetaMap{Map: ast.Meta{"b": &ast.MetaString{Text: "2"}, "a": &ast.MetaString{Text: "1"}}},
	}
	got, err := ToYAML(m)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromYAML(got)
	if err != nil {
		t.Fatal(err)
	}
	want := ast.Meta{
		"title":  &ast.MetaString{Text: "My Doc"},
		"draft":  &ast.MetaBool{Value: true},
		"tags":   &ast.MetaList{Items: []ast.MetaValue{&ast.MetaString{Text: "x"}}},
		"nested": &ast.MetaMap{Map: ast.Meta{"b": &ast.MetaString{Text: "2"}, "a": &ast.MetaString{Text: "1"}}},
	}
	if !ast.Equal(back, want) {
		t.Errorf("mismatch:\n%s\nyaml:\n%s", ast.Diff(want, back), got)
	}
}

func TestBlocksText(t *testing.T) {
	bs := []ast.Block{
		&ast.Para{Inlines: ast.Words("first para")},
		&ast.BulletList{Items: [][]ast.Block{
			{&ast.Plain{Inlines: ast.Words("one")}},
			{&ast.Plain{Inlines: ast.Words("two")}},
		}},
	}
	if got, want := blocksText(bs), "first para\none\ntwo"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLookup(t *testing.T) {
	m := ast.Meta{
		"author": &ast.MetaList{Items: []ast.MetaValue{
			&ast.MetaMap{Map: ast.Meta{"name": &ast.MetaString{Text: "Ann"}}},
		}},
		"title": &ast.MetaString{Text: "T"},
	}
	tests := []struct {
		path string
		want ast.MetaValue
	}{
		{path: "title", want: &ast.MetaString{Text: "T"}},
		{path: "author.0.name", want: &ast.MetaString{Text: "Ann"}},
		{path: "author.1.name"},
		{path: "author.x"},
		{path: "title.sub"},
		{path: "missing"},
	}
	for _, tt := range tests {
		got, ok := Lookup(m, tt.path)
		if ok != (tt.want != nil) {
			t.Errorf("%s: expected found=%v", tt.path, tt.want != nil)
			continue
		}
		if ok && !ast.Equal(got, tt.want) {
			t.Errorf("%s: mismatch:\n%s", tt.path, ast.Diff(tt.want, got))
		}
	}
	want := []string{"author.0.name", "title"}
	if diff := cmp.Diff(want, Paths(m)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
