// Package vcf provides line-oriented access to VCF files.
//
// It reads plain or BGZF-compressed files behind a single Reader type, so
// callers never branch on the input encoding, and classifies lines into
// header (metadata) and data lines.
//
// # Usage
//
//	r, err := vcf.Open("cohort.vcf.gz")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	for r.Scan() {
//	    line := r.Text()
//	    if vcf.IsHeaderLine(line) {
//	        // metadata
//	    }
//	}
//	if err := r.Err(); err != nil {
//	    return err
//	}
package vcf
