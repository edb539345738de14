// Package classset loads class records from a JSON class-set document.
//
// A class set is the serialized output of an upstream extraction step:
// one entry per class, carrying the descriptor, optional superclass,
// implemented interfaces, access flag names, and the declared method and
// field lists split by virtual/direct kind.
//
//	{
//	  "classes": [
//	    {
//	      "descriptor": "Lcom/example/Foo;",
//	      "super": "Ljava/lang/Object;",
//	      "interfaces": ["Lcom/example/Closeable;"],
//	      "access": ["public", "final"],
//	      "virtual_methods": [{"name": "toString", "access": ["public"]}],
//	      "direct_methods": [{"name": "<init>", "access": ["public", "constructor"]}],
//	      "instance_fields": [{"name": "count", "type": "I", "access": ["private"]}]
//	    }
//	  ]
//	}
//
// Loading is best-effort: entries that fail validation are skipped and
// their errors aggregated, so a caller can inspect everything wrong with
// a document in one pass or reject it outright.
package classset
