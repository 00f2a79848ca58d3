// Package te builds the path-based multi-commodity-flow models used for
// traffic engineering on a fixed topology.
//
// A ksp.Catalog of candidate paths is turned once into an Incidence (which
// paths credit which canonical link, which paths serve which pair). Build
// then produces one independent model.Model per Variant:
//
//   - MaxThroughput: maximize Σ path flows, demand as an upper bound.
//   - MinMLUWeighted: minimize MLU − total_flow/total_demand, demand as an
//     upper bound; the flow bonus keeps the optimum away from zero routing.
//   - MinMLUConstrained: minimize MLU, every demand must be met.
//
// All three share the same constraint skeleton: load ≤ capacity per link,
// load = Σ crediting flows per link, and one demand row per routed pair.
// Unreachable pairs have no paths and therefore no demand row.
//
// Runner drives the whole pipeline (enumerate, build, solve) and can solve
// the variants in parallel since their models share nothing.
package te
